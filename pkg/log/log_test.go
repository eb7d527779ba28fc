package log_test

import (
	"txlens/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Log", func() {
	DescribeTable("ParseLevel",
		func(raw string, want zapcore.Level) {
			level, err := log.ParseLevel(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal(want))
		},
		Entry("debug", "debug", zapcore.DebugLevel),
		Entry("upper case", "WARN", zapcore.WarnLevel),
		Entry("padded", " error ", zapcore.ErrorLevel),
		Entry("empty defaults to info", "", zapcore.InfoLevel),
	)

	It("rejects unknown levels", func() {
		_, err := log.ParseLevel("loud")
		Expect(err).To(MatchError(ContainSubstring(`parse log level "loud"`)))
	})

	It("builds a logger that honours the level", func() {
		logger := log.NewZapLogger("txlens", zapcore.WarnLevel)
		Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
	})
})
