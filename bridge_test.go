/*
 *    Copyright 2025 Jeff Galyan
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package dia_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jrgalyan/dia"
	"github.com/jrgalyan/dia/abitest"
)

var _ = Describe("Bridge", func() {
	var logs *observer.ObservedLogs

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		dia.SetLogger(zap.New(core))
		DeferCleanup(func() { dia.SetLogger(nil) })
	})

	It("logs the engine version on init", func() {
		br, _ := newBridge()
		Expect(br.Version()).To(Equal(abitest.Version))

		entries := logs.FilterMessage("dia initialized").All()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ContextMap()).To(HaveKeyWithValue("engine_version", abitest.Version))
	})

	It("refuses a nil boundary", func() {
		_, err := dia.Init(nil)
		Expect(err).To(MatchError(dia.ErrInitFailed))
	})

	It("logs the bind address when an application runs", func() {
		br, _ := newBridge()
		app := newApp(br).Host("127.0.0.1").Port(9090).Get("/", replyOK)
		Expect(app.Run()).To(Succeed())

		entries := logs.FilterMessage("application starting").All()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ContextMap()).To(HaveKeyWithValue("port", uint16(9090)))
		Expect(entries[0].ContextMap()).To(HaveKeyWithValue("routes", int64(1)))
	})

	It("warns when a handler leaves a response half applied", func() {
		br, lb := newBridge()
		lb.FailOn("ResponseStatus")
		newApp(br).Get("/", func(c *dia.Context) { c.Response.Status(201).Text("x") })
		serve(lb, "GET", "/", nil, "")

		Expect(logs.FilterMessage("response not fully applied").Len()).To(Equal(1))
	})

	It("creates every wrapper kind", func() {
		br, lb := newBridge()
		ctrl, err := br.NewController("/api")
		Expect(err).NotTo(HaveOccurred())
		mw, err := br.NewMiddleware()
		Expect(err).NotTo(HaveOccurred())
		req, err := br.NewRequest()
		Expect(err).NotTo(HaveOccurred())
		resp, err := br.NewResponse()
		Expect(err).NotTo(HaveOccurred())
		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		Expect(lb.Live()).To(Equal(5))

		Expect(ctrl.Free()).To(Succeed())
		Expect(mw.Free()).To(Succeed())
		Expect(req.Free()).To(Succeed())
		Expect(resp.Free()).To(Succeed())
		Expect(app.Free()).To(Succeed())
		Expect(lb.Live()).To(BeZero())
	})
})
