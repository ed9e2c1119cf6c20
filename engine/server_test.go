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

package engine_test

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/engine"
)

var _ = Describe("ApplicationRun", func() {
	var (
		eng   *engine.Engine
		app   abi.Handle
		addrs chan net.Addr
	)

	BeforeEach(func() {
		addrs = make(chan net.Addr, 1)
		eng = newEngine(func(c *engine.Config) {
			c.OnListen = func(a net.Addr) { addrs <- a }
			c.ShutdownTimeout = 5 * time.Second
		})
		app = eng.ApplicationNew()
		Expect(eng.ApplicationHost(app, cs("127.0.0.1"))).To(Equal(abi.OK))
		Expect(eng.ApplicationPort(app, 0)).To(Equal(abi.OK))
		DeferCleanup(func() { eng.ApplicationFree(app) })
	})

	start := func() <-chan abi.Status {
		done := make(chan abi.Status, 1)
		go func() {
			defer GinkgoRecover()
			done <- eng.ApplicationRun(app)
		}()
		return done
	}

	It("serves over a real socket until shut down", func() {
		mw := eng.MiddlewareNew()
		defer eng.MiddlewareFree(mw)
		Expect(eng.MiddlewareLogger(mw)).To(Equal(abi.OK))
		Expect(eng.ApplicationUse(app, mw)).To(Equal(abi.OK))

		ctrl := eng.ControllerNew()
		defer eng.ControllerFree(ctrl)
		Expect(eng.ControllerGet(ctrl, cs("/api/users/{id}"), func(req, resp abi.Handle) abi.Status {
			id := eng.RequestParam(req, cs("id")).String()
			return eng.ResponseJSON(resp, cs(`{"id":"`+id+`"}`))
		})).To(Equal(abi.OK))
		Expect(eng.ApplicationController(app, ctrl)).To(Equal(abi.OK))

		done := start()
		var addr net.Addr
		Eventually(addrs, 5*time.Second).Should(Receive(&addr))

		client := resty.New().SetBaseURL("http://" + addr.String())
		resp, err := client.R().Get("/api/users/7")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusOK))
		Expect(resp.String()).To(MatchJSON(`{"id":"7"}`))
		Expect(resp.Header().Get("X-Request-Id")).NotTo(BeEmpty())

		resp, err = client.R().Get("/api/users")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusNotFound))

		By("rejecting changes while running")
		Expect(eng.ApplicationRun(app)).To(Equal(abi.Fail))
		Expect(eng.ApplicationGet(app, cs("/late"), text(eng, "x"))).To(Equal(abi.Fail))
		Expect(eng.ApplicationPort(app, 9999)).To(Equal(abi.Fail))
		Expect(eng.MiddlewareCustom(mw, text(eng, "x"))).To(Equal(abi.Fail))
		Expect(eng.ControllerMiddleware(ctrl, text(eng, "x"))).To(Equal(abi.Fail))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(eng.Shutdown(ctx)).To(Succeed())
		Eventually(done, 5*time.Second).Should(Receive(Equal(abi.OK)))
	})

	It("stops when the application is freed", func() {
		done := start()
		Eventually(addrs, 5*time.Second).Should(Receive())
		eng.ApplicationFree(app)
		Eventually(done, 5*time.Second).Should(Receive(Equal(abi.OK)))
	})

	It("fails when the address cannot be bound", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		defer ln.Close()
		port := ln.Addr().(*net.TCPAddr).Port
		Expect(eng.ApplicationPort(app, uint16(port))).To(Equal(abi.OK))
		Expect(eng.ApplicationRun(app)).To(Equal(abi.Fail))
	})
})
