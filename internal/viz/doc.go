// Package viz renders parameter tables for the terminal using lipgloss.
package viz
