package quad_test

import (
	"bytes"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/quadlab/internal/methods"
	"github.com/san-kum/quadlab/internal/quad"
)

// sampler evaluates f at each point of a fixed grid over [a, b].
type sampler struct {
	name   string
	points int
}

func (s *sampler) Name() string { return s.name }

func (s *sampler) Integrate(in *quad.Integral, r *quad.Report) {
	h := in.Width() / float64(s.points-1)
	sum := 0.0
	for i := 0; i < s.points; i++ {
		x := in.A() + float64(i)*h
		y := in.Eval(x)
		sum += y
		r.Record(x, y)
	}
	r.Output = sum
}

// memo calls f once and reuses the value many times.
type memo struct{}

func (memo) Name() string { return "memo" }

func (memo) Integrate(in *quad.Integral, r *quad.Report) {
	v := in.Eval(in.A())
	for i := 0; i < 100; i++ {
		r.Output += v
	}
}

type recorder struct {
	reports []*quad.Report
}

func (rc *recorder) OnReport(r *quad.Report) { rc.reports = append(rc.reports, r) }

var _ = Describe("Integrator", func() {
	var in *quad.Integral

	BeforeEach(func() {
		in = quad.NewIntegral(math.Exp, 0, 1)
	})

	Context("without a strategy", func() {
		It("fails with ErrNoStrategySet", func() {
			it := quad.New(in, nil)
			r, err := it.Integrate()
			Expect(err).To(MatchError(quad.ErrNoStrategySet))
			Expect(r).To(BeNil())
		})
	})

	Context("with a strategy", func() {
		It("counts every evaluation", func() {
			r, err := quad.New(in, &sampler{name: "grid", points: 17}).Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Evals).To(Equal(17))
			Expect(r.Method).To(Equal("grid"))
		})

		It("counts actual calls regardless of reuse", func() {
			r, err := quad.New(in, memo{}).Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Evals).To(Equal(1))
			Expect(r.Output).To(BeNumerically("~", 100, 1e-12))
		})

		It("records timing", func() {
			r, err := quad.New(in, &sampler{name: "grid", points: 3}).Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Start.IsZero()).To(BeFalse())
			Expect(r.End).NotTo(BeTemporally("<", r.Start))
			Expect(r.Elapsed()).To(BeNumerically(">=", 0))
		})

		It("returns a fresh report every call", func() {
			it := quad.New(in, &sampler{name: "grid", points: 5})
			first, err := it.Integrate()
			Expect(err).NotTo(HaveOccurred())
			second, err := it.Integrate()
			Expect(err).NotTo(HaveOccurred())

			Expect(second).NotTo(BeIdenticalTo(first))
			Expect(first.Evals).To(Equal(5))
			Expect(second.Evals).To(Equal(5))
		})

		It("leaves the caller's integral uninstrumented", func() {
			it := quad.New(in, &sampler{name: "grid", points: 5})
			_, err := it.Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(in.Instrumented()).To(BeFalse())
			Expect(it.Integral().Instrumented()).To(BeTrue())
		})

		It("rejects an invalid interval", func() {
			bad := quad.NewIntegral(math.Exp, 1, 1)
			_, err := quad.New(bad, &sampler{name: "grid", points: 2}).Integrate()
			Expect(err).To(MatchError(quad.ErrInvalidInterval))
		})

		It("rejects a nil integral", func() {
			var it *quad.Integrator
			Expect(func() { it = quad.New(nil, &sampler{name: "grid", points: 2}) }).NotTo(Panic())
			r, err := it.Integrate()
			Expect(err).To(MatchError(quad.ErrInvalidInterval))
			Expect(r).To(BeNil())
		})
	})

	Context("swapping strategies", func() {
		It("keeps counts per run", func() {
			it := quad.New(in, nil)

			trap, err := methods.NewTrapezoid(10)
			Expect(err).NotTo(HaveOccurred())
			gauss, err := methods.NewGaussian(64)
			Expect(err).NotTo(HaveOccurred())

			it.SetStrategy(trap)
			r1, err := it.Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(r1.Method).To(Equal("Trapezoid"))
			Expect(r1.Evals).To(Equal(11))

			r2, err := it.IntegrateWith(gauss)
			Expect(err).NotTo(HaveOccurred())
			Expect(r2.Method).To(Equal("Gaussian"))
			Expect(r2.Evals).To(Equal(64))
			Expect(it.Strategy()).To(BeIdenticalTo(quad.Strategy(gauss)))

			Expect(r2.Output).To(BeNumerically("~", math.E-1, 1e-12))
			Expect(r1.Output).To(BeNumerically("~", math.E-1, 1e-2))
		})
	})

	Context("one-shot integration", func() {
		It("integrates through the problem", func() {
			s, err := methods.NewSimpson(100)
			Expect(err).NotTo(HaveOccurred())

			r, err := in.IntegrateWith(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Output).To(BeNumerically("~", math.E-1, 1e-8))
			Expect(r.Evals).To(Equal(101))
		})

		It("fails for a nil strategy", func() {
			_, err := in.IntegrateWith(nil)
			Expect(err).To(MatchError(quad.ErrNoStrategySet))
		})
	})

	Context("tracing", func() {
		It("records points only when enabled", func() {
			it := quad.New(in, &sampler{name: "grid", points: 4})

			r, err := it.Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Trace).To(BeEmpty())

			it.SetTrace(true)
			r, err = it.Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Trace).To(HaveLen(4))
			Expect(r.Trace[0]).To(Equal(quad.Point{X: 0, Y: 1}))
		})
	})

	Context("observers and logging", func() {
		It("notifies observers with the completed report", func() {
			rc := &recorder{}
			it := quad.New(in, &sampler{name: "grid", points: 3})
			it.AddObserver(rc)

			r, err := it.Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(rc.reports).To(HaveLen(1))
			Expect(rc.reports[0]).To(BeIdenticalTo(r))
			Expect(rc.reports[0].Evals).To(Equal(3))
		})

		It("logs each run at debug level", func() {
			var buf bytes.Buffer
			it := quad.New(in, &sampler{name: "grid", points: 3})
			it.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

			_, err := it.Integrate()
			Expect(err).NotTo(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring(`"method":"grid"`))
			Expect(buf.String()).To(ContainSubstring(`"evals":3`))
		})
	})
})
