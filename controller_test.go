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
	"github.com/jrgalyan/dia/abitest"
)

var _ = Describe("Controller", func() {
	var (
		br *dia.Bridge
		lb *abitest.Loopback
	)

	BeforeEach(func() {
		br, lb = newBridge()
	})

	newController := func(base string) *dia.Controller {
		c, err := br.NewController(base)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { _ = c.Free() })
		return c
	}

	text := func(s string) dia.Handler {
		return func(c *dia.Context) { c.Response.Text(s) }
	}

	DescribeTable("joins base and route paths literally",
		func(base, path, want string) {
			c := newController(base).Get(path, text("x"))
			Expect(c.Err()).NotTo(HaveOccurred())
			Expect(c.Routes()).To(Equal([]dia.Route{{Method: http.MethodGet, Path: want}}))
		},
		Entry("plain", "/api", "/users", "/api/users"),
		Entry("trailing and leading slash", "/api/", "/users", "/api//users"),
		Entry("empty base", "", "/users", "/users"),
		Entry("no separator", "/api", "users", "/apiusers"),
	)

	It("serves controller routes at the concatenated path", func() {
		app := newApp(br)
		c := newController("/api/").
			Get("/users", text("list")).
			Post("/users", text("create")).
			Put("/users/{id}", text("replace")).
			Delete("/users/{id}", text("remove"))
		app.AddController(c)
		Expect(app.Err()).NotTo(HaveOccurred())
		Expect(app.Routes()).To(HaveLen(4))
		Expect(app.Routes()[0].Path).To(Equal("/api//users"))

		Expect(string(serve(lb, http.MethodGet, "/api//users", nil, "").Body)).To(Equal("list"))
		Expect(string(serve(lb, http.MethodDelete, "/api//users/3", nil, "").Body)).To(Equal("remove"))
		Expect(serve(lb, http.MethodGet, "/api/users", nil, "").Status).To(Equal(http.StatusNotFound))
	})

	It("runs controller middleware after the application chain and only for its routes", func() {
		var order []string
		mw, err := br.NewMiddleware()
		Expect(err).NotTo(HaveOccurred())
		defer mw.Free()
		mw.Custom(func(*dia.Context) int {
			order = append(order, "app")
			return dia.Continue
		})

		c := newController("/admin").
			Middleware(func(*dia.Context) int {
				order = append(order, "controller")
				return dia.Continue
			}).
			Get("/stats", func(*dia.Context) { order = append(order, "handler") })
		Expect(c.MiddlewareLen()).To(Equal(1))

		app := newApp(br)
		app.Use(mw).AddController(c).Get("/public", func(*dia.Context) { order = append(order, "public") })
		Expect(app.Err()).NotTo(HaveOccurred())

		serve(lb, http.MethodGet, "/admin/stats", nil, "")
		Expect(order).To(Equal([]string{"app", "controller", "handler"}))

		order = nil
		serve(lb, http.MethodGet, "/public", nil, "")
		Expect(order).To(Equal([]string{"app", "public"}))
	})

	It("fails AddController when the engine rejects it", func() {
		lb.FailOn("ApplicationController")
		app := newApp(br)
		c := newController("/api").Get("/x", text("x"))
		Expect(app.AddController(c).Err()).To(MatchError(dia.ErrControllerAddFailed))
		Expect(app.Routes()).To(BeEmpty())
	})

	It("carries a controller's own failure into AddController", func() {
		lb.FailOn("ControllerGet")
		c := newController("/api").Get("/x", text("x"))
		Expect(c.Err()).To(MatchError(dia.ErrRouteAddFailed))

		app := newApp(br)
		err := app.AddController(c).Err()
		Expect(err).To(MatchError(dia.ErrControllerAddFailed))
		Expect(err).To(MatchError(dia.ErrRouteAddFailed))
		Expect(lb.CallCount("ApplicationController")).To(Equal(0))
	})

	It("reports middleware registration failures", func() {
		lb.FailOn("ControllerMiddleware")
		c := newController("/api").Middleware(func(*dia.Context) int { return dia.Continue })
		Expect(c.Err()).To(MatchError(dia.ErrMiddlewareAddFailed))
		Expect(c.MiddlewareLen()).To(BeZero())

		res := serve(lb, http.MethodGet, "/vault/secret", nil, "")
		Expect(res.Status).To(Equal(http.StatusOK))
		Expect(string(res.Body)).To(Equal("secret"))
	})

	It("refuses middleware added after the controller was merged", func() {
		app := newApp(br)
		c := newController("/vault").Get("/secret", text("secret"))
		app.AddController(c)
		Expect(app.Err()).NotTo(HaveOccurred())

		c.Middleware(func(ctx *dia.Context) int {
			return ctx.Reject(http.StatusUnauthorized, dia.ErrorResponse{Error: "unauthorized"})
		})
		Expect(c.Err()).To(MatchError(dia.ErrMiddlewareAddFailed))
		Expect(c.MiddlewareLen()).To(BeZero())
	})

	It("refuses routes added after the controller was merged", func() {
		app := newApp(br)
		c := newController("/api").Get("/a", text("a"))
		app.AddController(c)

		c.Get("/b", text("b"))
		Expect(c.Err()).To(MatchError(dia.ErrRouteAddFailed))
		Expect(c.Routes()).To(HaveLen(1))
		Expect(serve(lb, http.MethodGet, "/api/b", nil, "").Status).To(Equal(http.StatusNotFound))
	})

	It("registers PATCH routes", func() {
		app := newApp(br)
		c := newController("/api").Patch("/items/{id}", func(ctx *dia.Context) {
			id, _, _ := ctx.Request.Param("id")
			ctx.Response.Text("patched " + id)
		})
		app.AddController(c).Patch("/direct", text("direct"))
		Expect(app.Err()).NotTo(HaveOccurred())
		Expect(app.Routes()).To(Equal([]dia.Route{
			{Method: http.MethodPatch, Path: "/api/items/{id}"},
			{Method: http.MethodPatch, Path: "/direct"},
		}))

		Expect(string(serve(lb, http.MethodPatch, "/api/items/9", nil, "").Body)).To(Equal("patched 9"))
		Expect(string(serve(lb, http.MethodPatch, "/direct", nil, "").Body)).To(Equal("direct"))
		Expect(lb.CallCount("ControllerPatch")).To(Equal(1))
		Expect(lb.CallCount("ApplicationPatch")).To(Equal(1))
	})

	It("keeps its base path", func() {
		Expect(newController("/v1/").BasePath()).To(Equal("/v1/"))
	})
})
