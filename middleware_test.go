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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrgalyan/dia"
	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/abitest"
)

var _ = Describe("MiddlewareChain", func() {
	var (
		br *dia.Bridge
		lb *abitest.Loopback
	)

	BeforeEach(func() {
		br, lb = newBridge()
	})

	newChain := func() *dia.MiddlewareChain {
		mw, err := br.NewMiddleware()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { _ = mw.Free() })
		return mw
	}

	It("stops at the first nonzero entry and skips the handler", func() {
		var ran []int
		entry := func(i, code int) dia.Middleware {
			return func(c *dia.Context) int {
				ran = append(ran, i)
				if code != dia.Continue {
					c.Response.Status(http.StatusForbidden).Text("stopped")
				}
				return code
			}
		}
		mw := newChain().
			Custom(entry(1, 0)).
			Custom(entry(2, 0)).
			Custom(entry(3, -1)).
			Custom(entry(4, 0))
		Expect(mw.Err()).NotTo(HaveOccurred())

		var handled bool
		newApp(br).Use(mw).Get("/x", func(*dia.Context) { handled = true })

		res := serve(lb, http.MethodGet, "/x", nil, "")
		Expect(ran).To(Equal([]int{1, 2, 3}))
		Expect(handled).To(BeFalse())
		Expect(res.Status).To(Equal(http.StatusForbidden))
		Expect(string(res.Body)).To(Equal("stopped"))
		Expect(res.Outcome.Code).To(BeEquivalentTo(-1))
	})

	DescribeTable("stops on codes wider than the boundary status",
		func(code int64, want abi.Status) {
			mw := newChain().Custom(func(c *dia.Context) int {
				c.Response.Status(http.StatusForbidden).Text("stop")
				return int(code)
			})
			var handled bool
			newApp(br).Use(mw).Get("/x", func(*dia.Context) { handled = true })

			res := serve(lb, http.MethodGet, "/x", nil, "")
			Expect(handled).To(BeFalse())
			Expect(res.Status).To(Equal(http.StatusForbidden))
			Expect(res.Outcome.Aborted).To(BeTrue())
			Expect(res.Outcome.Code).To(Equal(want))
		},
		Entry("low 32 bits zero", int64(1)<<32, abi.Fail),
		Entry("below the int32 range", -(int64(1) << 40), abi.Fail),
		Entry("largest int32", int64(1)<<31-1, abi.Status(1<<31-1)),
	)

	It("runs every entry and then the handler when all continue", func() {
		var ran []string
		mw := newChain().
			Custom(func(*dia.Context) int { ran = append(ran, "a"); return dia.Continue }).
			Custom(func(*dia.Context) int { ran = append(ran, "b"); return dia.Continue })
		newApp(br).Use(mw).Get("/x", func(*dia.Context) { ran = append(ran, "handler") })

		res := serve(lb, http.MethodGet, "/x", nil, "")
		Expect(ran).To(Equal([]string{"a", "b", "handler"}))
		Expect(res.Outcome.Terminal).To(BeTrue())
	})

	It("stops with a JSON error body through Reject", func() {
		mw := newChain().Custom(func(c *dia.Context) int {
			return c.Reject(http.StatusTeapot, dia.ErrorResponse{Error: "teapot", Message: "short and stout"})
		})
		newApp(br).Use(mw).Get("/x", func(c *dia.Context) { c.Response.Text("unreachable") })

		res := serve(lb, http.MethodGet, "/x", nil, "")
		Expect(res.Status).To(Equal(http.StatusTeapot))
		Expect(string(res.Body)).To(MatchJSON(`{"error":"teapot","message":"short and stout"}`))
	})

	It("halts through Next when a response call failed", func() {
		lb.FailOn("ResponseHeader")
		var handled bool
		mw := newChain().Custom(func(c *dia.Context) int {
			c.Response.Header("X-A", "b")
			return c.Next()
		})
		newApp(br).Use(mw).Get("/x", func(*dia.Context) { handled = true })

		res := serve(lb, http.MethodGet, "/x", nil, "")
		Expect(handled).To(BeFalse())
		Expect(res.Outcome.Code).To(BeEquivalentTo(dia.Halt))
	})

	It("lists its entries in order", func() {
		mw := newChain().CORS().Logger().Custom(func(*dia.Context) int { return dia.Continue })
		Expect(mw.Entries()).To(Equal([]string{"cors", "logger", "custom"}))
	})

	It("answers preflights through the engine's CORS entry", func() {
		mw := newChain().CORS()
		newApp(br).Use(mw).Get("/x", func(c *dia.Context) { c.Response.Text("x") })

		res := serve(lb, http.MethodOptions, "/x", http.Header{
			"Origin":                        {"https://example.com"},
			"Access-Control-Request-Method": {"GET"},
		}, "")
		Expect(res.Status).To(Equal(http.StatusNoContent))
		Expect(res.Outcome.Terminal).To(BeFalse())
	})

	It("records the first registration failure", func() {
		lb.FailOn("MiddlewareCORS")
		mw := newChain().CORS().Logger()
		Expect(mw.Err()).To(MatchError(dia.ErrMiddlewareAddFailed))
		Expect(mw.Entries()).To(BeEmpty())
		Expect(lb.CallCount("MiddlewareLogger")).To(BeZero())

		app := newApp(br).Use(mw)
		Expect(app.Err()).To(MatchError(dia.ErrMiddlewareAddFailed))
		Expect(lb.CallCount("ApplicationUse")).To(BeZero())
	})

	It("rejects appends once the application runs", func() {
		mw := newChain().Logger()
		app := newApp(br).Use(mw)
		Expect(app.Run()).To(Succeed())

		mw.Custom(func(*dia.Context) int { return dia.Continue })
		Expect(mw.Err()).To(MatchError(dia.ErrMiddlewareAddFailed))
	})

	It("invalidates the context when the callback returns", func() {
		var kept *dia.Context
		newApp(br).Get("/x", func(c *dia.Context) { kept = c })
		serve(lb, http.MethodGet, "/x", nil, "")

		_, err := kept.Request.Method()
		Expect(err).To(MatchError(dia.ErrInvalidHandle))
		kept.Response.Text("late")
		Expect(kept.Response.Err()).To(MatchError(dia.ErrInvalidHandle))
	})
})
