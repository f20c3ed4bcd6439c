package config_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendconf/internal/config"
	"github.com/san-kum/pendconf/internal/params"
)

var _ = Describe("Load and Save", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Describe("round trip", func() {
		DescribeTable("reconstructs every field",
			func(mutate func(*params.Params)) {
				p := params.Default()
				mutate(p)
				path := filepath.Join(dir, "cfg.yaml")

				Expect(config.Save(p, path, true)).To(Succeed())
				loaded, err := config.Load(path)
				Expect(err).NotTo(HaveOccurred())
				Expect(*loaded).To(Equal(*p))
			},
			Entry("defaults", func(p *params.Params) {}),
			Entry("every field set", func(p *params.Params) {
				for i, f := range params.Fields() {
					Expect(p.Set(f.Name, float64(i)*0.1+0.01)).To(Succeed())
				}
			}),
			Entry("awkward floats", func(p *params.Params) {
				p.G = 0.1 + 0.2
				p.MD = 1e300
				p.RA = 5e-324
				p.LB = -0.0
			}),
		)
	})

	Describe("unknown keys", func() {
		It("rejects the document without applying any valid key", func() {
			path := write("cfg.yaml", "g: 1.0\nm_d: 3.0\nzzz: 4.0\n")

			p, err := config.Load(path)
			Expect(p).To(BeNil())

			var unknown *params.UnknownFieldError
			Expect(errors.As(err, &unknown)).To(BeTrue())
			Expect(unknown.Name).To(Equal("zzz"))
		})
	})

	Describe("partial override", func() {
		It("keeps defaults for fields absent from the document", func() {
			path := write("cfg.yaml", "g: 9.9\nr_d: 0.05\n")

			p, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())

			defaults := params.Default().Values()
			for name, v := range p.Values() {
				switch name {
				case "g":
					Expect(v).To(Equal(9.9))
				case "r_d":
					Expect(v).To(Equal(0.05))
				default:
					Expect(v).To(Equal(defaults[name]), "field %s", name)
				}
			}
		})

		It("does not re-derive densities from overridden lengths", func() {
			path := write("cfg.yaml", "l_1: 4.0\n")

			p, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.L1).To(Equal(4.0))
			Expect(p.Rho1).To(Equal(1.0))
		})
	})

	Describe("overwrite guard", func() {
		It("leaves the first document byte-identical", func() {
			path := filepath.Join(dir, "cfg.yaml")
			first := params.Default()
			first.G = 3.71
			Expect(config.Save(first, path, false)).To(Succeed())
			before, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(config.Save(params.Default(), path, false)).To(MatchError(config.ErrExists))

			after, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(Equal(before))
		})
	})

	Describe("idempotent load", func() {
		It("yields equal, independent instances", func() {
			path := write("cfg.yaml", "Cd_sph: 0.5\nm_b: 0.25\n")

			a, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			b, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(*a).To(Equal(*b))
			a.MB = 7
			Expect(b.MB).To(Equal(0.25))
		})
	})

	Describe("missing file", func() {
		It("fails with ErrNotFound", func() {
			_, err := config.Load(filepath.Join(dir, "absent.yaml"))
			Expect(err).To(MatchError(config.ErrNotFound))
		})
	})
})
