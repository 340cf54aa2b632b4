/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package logger_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	. "github.com/hartogjr/lcte/pkg/logger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LogWriter", func() {

	var (
		l   *Logger
		buf *bytes.Buffer
	)

	BeforeEach(func() {
		l = New()
		l.SetClock(fixedClock, fixedTid)
		buf = &bytes.Buffer{}
		Expect(l.Stream(buf, 0)).Should(BeNil())
	})

	It("Logs one line per written line", func() {
		w := NewWriter(l, Notice, "stdin")
		_, err := io.Copy(w, strings.NewReader("first\r\n\nthird 100%\npart"))
		Expect(err).Should(BeNil())

		Expect(buf.String()).To(Equal(
			"05:06:07.000008 [4242] stdin:1 NOTICE first\n" +
				"05:06:07.000008 [4242] stdin:3 NOTICE third 100%\n"))

		Expect(w.Close()).Should(BeNil())
		Expect(buf.String()).To(HaveSuffix("stdin:4 NOTICE part\n"))

		// Nothing left to flush
		before := buf.Len()
		Expect(w.Flush()).Should(BeNil())
		Expect(buf.Len()).To(Equal(before))
	})

	It("Joins lines split across writes", func() {
		w := NewWriter(l, Info, "pipe")
		fmt.Fprint(w, "hel")
		Expect(buf.Len()).To(Equal(0))
		fmt.Fprint(w, "lo\n")
		Expect(buf.String()).To(HaveSuffix("pipe:1 INFO hello\n"))
	})

	It("Reports a missing destination", func() {
		w := NewWriter(New(), Info, "pipe")
		_, err := fmt.Fprint(w, "lost\n")
		Expect(err).To(MatchError(ErrNoStream))
	})
})
