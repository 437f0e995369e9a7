package testcase_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zerfoo/softfloat"
	"github.com/zerfoo/softfloat/testcase"
)

var _ = Describe("ParseUint", func() {
	It("parses decimal", func() {
		Expect(testcase.ParseUint("1234", 16)).To(Equal(uint64(1234)))
	})

	It("parses hex, octal, and binary prefixes", func() {
		Expect(testcase.ParseUint("0x3C00", 16)).To(Equal(uint64(0x3C00)))
		Expect(testcase.ParseUint("0o17", 16)).To(Equal(uint64(15)))
		Expect(testcase.ParseUint("0b1010", 16)).To(Equal(uint64(10)))
		Expect(testcase.ParseUint("0X3c00", 16)).To(Equal(uint64(0x3C00)))
	})

	It("parses a lone zero", func() {
		Expect(testcase.ParseUint("0", 16)).To(Equal(uint64(0)))
	})

	It("rejects legacy octal", func() {
		_, err := testcase.ParseUint("017", 16)
		Expect(err).To(MatchError(ContainSubstring("octal numbers must start with 0o")))
	})

	It("rejects invalid digits", func() {
		_, err := testcase.ParseUint("12z4", 16)
		Expect(err).To(MatchError(ContainSubstring("invalid digit")))
		_, err = testcase.ParseUint("0b2", 16)
		Expect(err).To(MatchError(ContainSubstring("invalid digit")))
	})

	It("rejects values wider than the type", func() {
		_, err := testcase.ParseUint("0x10000", 16)
		Expect(err).To(MatchError(ContainSubstring("number too big")))
	})

	It("rejects an empty digit string", func() {
		_, err := testcase.ParseUint("0x", 16)
		Expect(err).To(MatchError(ContainSubstring("number has no digits")))
	})

	It("rejects a negative sign", func() {
		_, err := testcase.ParseUint("-1", 16)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ParseInt", func() {
	It("parses negative values", func() {
		Expect(testcase.ParseInt("-25", 32)).To(Equal(int64(-25)))
		Expect(testcase.ParseInt("-0x10", 32)).To(Equal(int64(-16)))
	})

	It("accepts the extreme values of the type", func() {
		Expect(testcase.ParseInt("-0x80000000", 32)).To(Equal(int64(-0x80000000)))
		Expect(testcase.ParseInt("0x7FFFFFFF", 32)).To(Equal(int64(0x7FFFFFFF)))
	})

	It("rejects values outside the type", func() {
		_, err := testcase.ParseInt("0x80000000", 32)
		Expect(err).To(MatchError(ContainSubstring("number too big")))
		_, err = testcase.ParseInt("-0x80000001", 32)
		Expect(err).To(MatchError(ContainSubstring("number too big")))
	})
})

var _ = Describe("Enumerated fields", func() {
	It("parses rounding modes", func() {
		Expect(testcase.ParseRoundingMode("TowardZero")).To(Equal(softfloat.TowardZero))
		_, err := testcase.ParseRoundingMode("Sideways")
		Expect(err).To(MatchError(ContainSubstring("invalid RoundingMode")))
	})

	It("parses tininess and exception-handling modes", func() {
		Expect(testcase.ParseTininessDetectionMode("BeforeRounding")).To(Equal(softfloat.BeforeRounding))
		Expect(testcase.ParseExceptionHandlingMode("DefaultSignalExactUnderflow")).
			To(Equal(softfloat.DefaultSignalExactUnderflow))
	})

	It("parses status flag sets", func() {
		Expect(testcase.ParseStatusFlags("(empty)")).To(Equal(softfloat.StatusFlags(0)))
		flags, err := testcase.ParseStatusFlags("OVERFLOW|INEXACT")
		Expect(err).ToNot(HaveOccurred())
		Expect(flags).To(Equal(softfloat.FlagOverflow | softfloat.FlagInexact))
		_, err = testcase.ParseStatusFlags("OVERFLOW|BOGUS")
		Expect(err).To(MatchError(ContainSubstring("invalid status flags")))
	})
})
