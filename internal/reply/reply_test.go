package reply_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jwulff/diabot-go/internal/a1c"
	"github.com/jwulff/diabot-go/internal/bloodsugar"
	"github.com/jwulff/diabot-go/internal/reply"
)

var _ = Describe("Convert", func() {
	It("describes a known mmol/L value in mg/dL", func() {
		result, err := bloodsugar.Parse("5.7mmol")
		Expect(err).ToNot(HaveOccurred())

		r := reply.Convert(result)
		Expect(r.Level).To(Equal(reply.LevelInfo))
		Expect(r.Description).To(Equal("5.7 mmol/L is 103 mg/dL"))
		Expect(r.Private).To(BeFalse())
	})

	It("describes a known mg/dL value in mmol/L", func() {
		result, err := bloodsugar.Parse("100 mg")
		Expect(err).ToNot(HaveOccurred())

		Expect(reply.Convert(result).Description).To(Equal("100 mg/dL is 5.6 mmol/L"))
	})

	It("gives both interpretations of an ambiguous value", func() {
		result, err := bloodsugar.Parse("35")
		Expect(err).ToNot(HaveOccurred())

		r := reply.Convert(result)
		Expect(r.Level).To(Equal(reply.LevelWarning))
		Expect(r.Description).To(Equal(
			"I'm not sure if 35 is mmol/L or mg/dL, so I'll give you both.\n" +
				"- 35 mg/dL is 1.9 mmol/L\n" +
				"- 35.0 mmol/L is 631 mg/dL"))
	})

	It("renders as plain text", func() {
		r := reply.Convert(bloodsugar.Known{Glucose: bloodsugar.Mgdl(180)})
		Expect(r.String()).To(Equal("180 mg/dL is 10.0 mmol/L\n"))
	})
})

var _ = Describe("ConvertError", func() {
	var r reply.Reply

	BeforeEach(func() {
		_, err := bloodsugar.Parse("5.5 tests")
		Expect(err).To(HaveOccurred())
		r = reply.ConvertError(err)
	})

	It("is a private error reply", func() {
		Expect(r.Level).To(Equal(reply.LevelError))
		Expect(r.Title).To(Equal("Invalid Input"))
		Expect(r.Private).To(BeTrue())
	})

	It("includes the reason", func() {
		Expect(r.Description).To(ContainSubstring("Reason: unknown unit specified: 'tests'"))
	})

	It("lists example inputs", func() {
		Expect(r.Fields).To(HaveLen(1))
		Expect(r.Fields[0].Name).To(Equal("Examples of valid input"))
		Expect(r.Fields[0].Value).To(Equal("convert 5.7mmol\nconvert 100 mgdl\nconvert 30"))
		Expect(r.String()).To(HavePrefix("Invalid Input\n\nI couldn't understand your input."))
		Expect(r.String()).To(HaveSuffix("Examples of valid input:\nconvert 5.7mmol\nconvert 100 mgdl\nconvert 30\n"))
	})
})

var _ = Describe("A1c", func() {
	var summary a1c.Summary

	BeforeEach(func() {
		var err error
		summary, err = a1c.FromGlucose(bloodsugar.Mgdl(100)).Summary()
		Expect(err).ToNot(HaveOccurred())
	})

	It("lists every scale", func() {
		r := reply.A1c(reply.Estimate{Source: "100 mg/dL", Summary: summary})
		Expect(r.Level).To(Equal(reply.LevelInfo))
		Expect(r.Description).To(Equal(
			"Estimated A1c for 100 mg/dL:\n" +
				"- DCCT: 5.1 %\n" +
				"- IFCC: 32.4 mmol/mol\n" +
				"- Fructosamine: 206.0 µmol/L"))
	})

	It("warns when the glucose unit was guessed", func() {
		r := reply.A1cAmbiguous("35",
			reply.Estimate{Source: "35 mg/dL", Summary: summary},
			reply.Estimate{Source: "35.0 mmol/L", Summary: summary})
		Expect(r.Level).To(Equal(reply.LevelWarning))
		Expect(r.Description).To(HavePrefix("I'm not sure if 35 is mmol/L or mg/dL, so I'll give you both.\nEstimated A1c for 35 mg/dL:"))
		Expect(r.Description).To(ContainSubstring("\n\nEstimated A1c for 35.0 mmol/L:"))
	})

	It("explains estimation errors", func() {
		_, err := a1c.Estimate(a1c.Known{}).IFCC()
		Expect(errors.Is(err, a1c.ErrMissingInput)).To(BeTrue())

		r := reply.A1cError(err)
		Expect(r.Level).To(Equal(reply.LevelError))
		Expect(r.Description).To(ContainSubstring("Reason: unable to calculate ifcc, expected input value(s): glucose, dcct, fructosamine"))
		Expect(r.Fields[0].Value).To(ContainSubstring("a1c 6.7 --from dcct"))
	})
})

var _ = Describe("Level", func() {
	It("has a readable name", func() {
		Expect(reply.LevelInfo.String()).To(Equal("info"))
		Expect(reply.LevelWarning.String()).To(Equal("warning"))
		Expect(reply.LevelError.String()).To(Equal("error"))
		Expect(reply.Level(9).String()).To(Equal("Level(9)"))
	})
})
