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
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrgalyan/dia"
	"github.com/jrgalyan/dia/engine"
)

type todo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var _ = Describe("Over a real socket", func() {
	var (
		br     *dia.Bridge
		eng    *engine.Engine
		addrs  chan net.Addr
		client *resty.Client
	)

	BeforeEach(func() {
		addrs = make(chan net.Addr, 1)
		cfg := engine.DefaultConfig()
		cfg.NoSignals = true
		cfg.ShutdownTimeout = 5 * time.Second
		cfg.OnListen = func(a net.Addr) { addrs <- a }
		eng = engine.New(cfg)

		var err error
		br, err = dia.Init(eng)
		Expect(err).NotTo(HaveOccurred())
	})

	// start runs app in the background and returns once it is listening.
	start := func(app *dia.Application) <-chan error {
		done := make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			done <- app.Run()
		}()
		var addr net.Addr
		Eventually(addrs, 5*time.Second).Should(Receive(&addr))
		client = resty.New().SetBaseURL("http://" + addr.String())
		DeferCleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			Expect(eng.Shutdown(ctx)).To(Succeed())
			Eventually(done, 5*time.Second).Should(Receive(BeNil()))
		})
		return done
	}

	It("serves controllers, middleware and params end to end", func() {
		mw, err := br.NewMiddleware()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(mw.Free)
		mw.Logger().Custom(dia.SecurityHeaders(dia.DefaultSecurityHeadersConfig()))

		ctrl, err := br.NewController("/api/todos")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(ctrl.Free)
		ctrl.
			Get("/{id}", func(c *dia.Context) {
				id, _, _ := c.Request.Param("id")
				c.Response.JSONValue(todo{ID: id, Title: "write tests"})
			}).
			Post("", func(c *dia.Context) {
				var in todo
				if err := c.Request.BindJSON(&in); err != nil {
					c.Reject(http.StatusBadRequest, dia.ErrorResponse{Error: "bad request", Message: err.Error()})
					return
				}
				in.ID = "1"
				c.Response.Status(http.StatusCreated).JSONValue(in)
			}).
			Patch("/{id}", func(c *dia.Context) {
				if ok, _ := c.Request.IsJSON(); !ok {
					c.Response.BadRequest("expected JSON")
					return
				}
				var in todo
				if err := c.Request.BindJSON(&in); err != nil {
					c.Response.BadRequest(err.Error())
					return
				}
				in.ID, _, _ = c.Request.Param("id")
				c.Response.JSONValue(in)
			})

		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(app.Free)
		app.Host("127.0.0.1").Port(0).Use(mw).AddController(ctrl)
		Expect(app.Err()).NotTo(HaveOccurred())
		start(app)

		var got todo
		resp, err := client.R().SetResult(&got).Get("/api/todos/42")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusOK))
		Expect(got).To(Equal(todo{ID: "42", Title: "write tests"}))
		Expect(resp.Header().Get("X-Frame-Options")).To(Equal("DENY"))
		Expect(resp.Header().Get("X-Request-Id")).NotTo(BeEmpty())

		resp, err = client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(`{"title":"ship it"}`).
			SetResult(&got).
			Post("/api/todos")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusCreated))
		Expect(got).To(Equal(todo{ID: "1", Title: "ship it"}))

		resp, err = client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(`{"title":"renamed"}`).
			SetResult(&got).
			Patch("/api/todos/7")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusOK))
		Expect(got).To(Equal(todo{ID: "7", Title: "renamed"}))

		resp, err = client.R().SetHeader("Content-Type", "text/plain").SetBody("renamed").Patch("/api/todos/7")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusBadRequest))
		Expect(resp.String()).To(MatchJSON(`{"error":"bad request","message":"expected JSON"}`))

		resp, err = client.R().SetBody(`{"title":"x","extra":true}`).Post("/api/todos")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusBadRequest))

		resp, err = client.R().Get("/nowhere")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusNotFound))
		Expect(resp.String()).To(MatchJSON(`{"error":"not found"}`))
	})

	It("rate limits by peer address", func() {
		l := dia.NewRateLimiter(dia.RateLimitConfig{Limit: 2, Window: time.Minute})
		mw, err := br.NewMiddleware()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(mw.Free)
		mw.Custom(dia.RateLimit(l))

		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(app.Free)
		app.Port(0).Use(mw).Get("/", replyOK)
		start(app)

		for i := 0; i < 2; i++ {
			resp, err := client.R().Get("/")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode()).To(Equal(http.StatusOK))
			Expect(resp.String()).To(Equal("ok"))
		}
		resp, err := client.R().Get("/")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusTooManyRequests))
		Expect(resp.Header().Get("Retry-After")).NotTo(BeEmpty())
		Expect(l.Len()).To(Equal(1))
	})

	It("answers CORS preflights without reaching the handler", func() {
		mw, err := br.NewMiddleware()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(mw.Free)
		mw.CORS()

		var handled bool
		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(app.Free)
		app.Port(0).Use(mw).Post("/items", func(*dia.Context) { handled = true })
		start(app)

		resp, err := client.R().
			SetHeader("Origin", "https://app.example").
			SetHeader("Access-Control-Request-Method", http.MethodPost).
			Options("/items")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusNoContent))
		Expect(resp.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		Expect(handled).To(BeFalse())
	})

	It("keeps the application from being reconfigured while it runs", func() {
		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(app.Free)
		app.Port(0).Get("/", replyOK)
		start(app)

		Expect(app.Run()).To(MatchError(dia.ErrApplicationRunning))
		app.Get("/late", replyOK)
		Expect(app.Err()).To(MatchError(dia.ErrApplicationRunning))
	})

	It("waits in Free until the engine stops the application", func() {
		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		app.Port(0).Get("/", replyOK)
		start(app)

		freed := make(chan error, 1)
		go func() { freed <- app.Free() }()
		Consistently(freed, 200*time.Millisecond).ShouldNot(Receive())

		resp, err := client.R().Get("/")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusOK))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(eng.Shutdown(ctx)).To(Succeed())
		Eventually(freed, 5*time.Second).Should(Receive(BeNil()))
	})
})
