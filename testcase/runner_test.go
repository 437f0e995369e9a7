package testcase_test

import (
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zerfoo/softfloat/testcase"
)

var _ = Describe("OperationForFile", func() {
	It("strips directories and extensions", func() {
		Expect(testcase.OperationForFile("test_data/add.txt")).To(Equal("add"))
	})

	It("folds mul_add rounding-mode variants together", func() {
		Expect(testcase.OperationForFile("mul_add_ties_to_even.txt")).To(Equal("mul_add"))
		Expect(testcase.OperationForFile("mul_add_toward_negative.txt")).To(Equal("mul_add"))
	})
})

var _ = Describe("Run", func() {
	It("skips comments and blank lines", func() {
		input := "# header\n\n0x3C00 0x3C00 TiesToEven AfterRounding 0x4000 (empty)\n"
		Expect(testcase.Run("add.txt", strings.NewReader(input))).To(Succeed())
	})

	It("reports a result mismatch with file, line, and hex values", func() {
		input := "0x3C00 0x3C00 TiesToEven AfterRounding 0x4001 (empty)\n"
		err := testcase.Run("add.txt", strings.NewReader(input))
		var failure *testcase.Failure
		Expect(err).To(BeAssignableToTypeOf(failure))
		failure = err.(*testcase.Failure)
		Expect(failure.Line).To(Equal(1))
		Expect(failure.Field).To(Equal("result"))
		Expect(failure.Expected).To(Equal("0x4001"))
		Expect(failure.Actual).To(Equal("0x4000"))
		Expect(failure.Error()).To(ContainSubstring("add.txt:1"))
	})

	It("reports a status-flag mismatch", func() {
		input := "0x3C00 0x3C00 TiesToEven AfterRounding 0x4000 INEXACT\n"
		err := testcase.Run("add.txt", strings.NewReader(input))
		failure, ok := err.(*testcase.Failure)
		Expect(ok).To(BeTrue())
		Expect(failure.Field).To(Equal("status_flags"))
	})

	It("rejects a missing field", func() {
		input := "0x3C00 0x3C00 TiesToEven AfterRounding 0x4000\n"
		err := testcase.Run("add.txt", strings.NewReader(input))
		Expect(err).To(MatchError(ContainSubstring("missing argument: status_flags")))
	})

	It("rejects a surplus field", func() {
		input := "0x3C00 0x3C00 TiesToEven AfterRounding 0x4000 (empty) extra\n"
		err := testcase.Run("add.txt", strings.NewReader(input))
		Expect(err).To(MatchError(ContainSubstring("too many arguments")))
	})

	It("rejects unknown operations", func() {
		err := testcase.Run("frobnicate.txt", strings.NewReader(""))
		Expect(err).To(MatchError(ContainSubstring("unknown operation")))
	})
})

var _ = Describe("Seeded test data", func() {
	files, globErr := filepath.Glob(filepath.Join("..", "test_data", "*.txt"))

	It("finds the seeded files", func() {
		Expect(globErr).ToNot(HaveOccurred())
		Expect(files).ToNot(BeEmpty())
	})

	for _, file := range files {
		file := file
		It("passes "+filepath.Base(file), func() {
			Expect(testcase.RunFile(file)).To(Succeed())
		})
	}
})
