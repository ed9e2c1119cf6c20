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
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/jrgalyan/dia"
	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/abi/mock"
)

var _ = Describe("Handle lifecycle", func() {
	var (
		ctrl *gomock.Controller
		b    *mock.MockBoundary
		br   *dia.Bridge
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		b = mock.NewMockBoundary(ctrl)
		b.EXPECT().Init().Return(abi.OK)
		b.EXPECT().Version().Return(abi.CString("mock\x00")).AnyTimes()
		var err error
		br, err = dia.Init(b)
		Expect(err).NotTo(HaveOccurred())
	})

	It("frees an application exactly once", func() {
		b.EXPECT().ApplicationNew().Return(abi.Handle(7))
		b.EXPECT().ApplicationFree(abi.Handle(7)).Times(1)

		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Free()).To(Succeed())
		Expect(app.Free()).To(MatchError(dia.ErrInvalidHandle))
	})

	It("never forwards calls through a freed application", func() {
		b.EXPECT().ApplicationNew().Return(abi.Handle(7))
		b.EXPECT().ApplicationFree(abi.Handle(7))

		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Free()).To(Succeed())

		// No ApplicationHost or ApplicationRun expectation: gomock fails the
		// test if either reaches the boundary.
		app.Host("0.0.0.0")
		Expect(app.Err()).To(MatchError(dia.ErrInvalidHandle))
		Expect(app.Run()).To(MatchError(dia.ErrInvalidHandle))
	})

	It("reports a null handle as a creation failure", func() {
		b.EXPECT().ApplicationNew().Return(abi.Null)
		b.EXPECT().ControllerNew().Return(abi.Null)
		b.EXPECT().MiddlewareNew().Return(abi.Null)
		b.EXPECT().RequestNew().Return(abi.Null)
		b.EXPECT().ResponseNew().Return(abi.Null)

		_, err := br.NewApplication()
		Expect(err).To(MatchError(dia.ErrHandleCreateFailed))
		_, err = br.NewController("/")
		Expect(err).To(MatchError(dia.ErrHandleCreateFailed))
		_, err = br.NewMiddleware()
		Expect(err).To(MatchError(dia.ErrHandleCreateFailed))
		_, err = br.NewRequest()
		Expect(err).To(MatchError(dia.ErrHandleCreateFailed))
		_, err = br.NewResponse()
		Expect(err).To(MatchError(dia.ErrHandleCreateFailed))
	})

	It("gives every wrapper the same free-once lifecycle", func() {
		b.EXPECT().ControllerNew().Return(abi.Handle(1))
		b.EXPECT().ControllerFree(abi.Handle(1))
		b.EXPECT().MiddlewareNew().Return(abi.Handle(2))
		b.EXPECT().MiddlewareFree(abi.Handle(2))
		b.EXPECT().RequestNew().Return(abi.Handle(3))
		b.EXPECT().RequestFree(abi.Handle(3))
		b.EXPECT().ResponseNew().Return(abi.Handle(4))
		b.EXPECT().ResponseFree(abi.Handle(4))

		c, _ := br.NewController("/api")
		m, _ := br.NewMiddleware()
		req, _ := br.NewRequest()
		resp, _ := br.NewResponse()

		for _, free := range []func() error{c.Free, m.Free, req.Free, resp.Free} {
			Expect(free()).To(Succeed())
			Expect(free()).To(MatchError(dia.ErrInvalidHandle))
		}

		c.Get("/x", func(*dia.Context) {})
		Expect(c.Err()).To(MatchError(dia.ErrInvalidHandle))
		m.Logger()
		Expect(m.Err()).To(MatchError(dia.ErrInvalidHandle))
		_, err := req.Method()
		Expect(err).To(MatchError(dia.ErrInvalidHandle))
		resp.Status(200)
		Expect(resp.Err()).To(MatchError(dia.ErrInvalidHandle))
	})

	It("names the failed boundary call", func() {
		b.EXPECT().ApplicationNew().Return(abi.Handle(9))
		b.EXPECT().ApplicationHost(abi.Handle(9), gomock.Any()).Return(abi.Fail)
		b.EXPECT().ApplicationFree(abi.Handle(9))

		app, err := br.NewApplication()
		Expect(err).NotTo(HaveOccurred())
		defer app.Free()

		err = app.Host("0.0.0.0").Err()
		Expect(err).To(MatchError(dia.ErrHostSetFailed))
		var ce *dia.CallError
		Expect(errors.As(err, &ce)).To(BeTrue())
		Expect(ce.Call).To(Equal("application_host"))
		Expect(ce.Status).To(Equal(abi.Fail))
	})

	It("passes NUL-terminated strings across", func() {
		b.EXPECT().ApplicationNew().Return(abi.Handle(5))
		b.EXPECT().ApplicationHost(abi.Handle(5), gomock.Any()).DoAndReturn(func(_ abi.Handle, host abi.CString) abi.Status {
			Expect([]byte(host)).To(Equal([]byte("localhost\x00")))
			return abi.OK
		})
		b.EXPECT().ApplicationFree(abi.Handle(5))

		app, _ := br.NewApplication()
		defer app.Free()
		Expect(app.Host("localhost").Err()).NotTo(HaveOccurred())
		host, _ := app.Addr()
		Expect(host).To(Equal("localhost"))
	})
})

var _ = Describe("Init", func() {
	It("fails on a nil boundary", func() {
		_, err := dia.Init(nil)
		Expect(err).To(MatchError(dia.ErrInitFailed))
	})

	It("fails when the engine refuses to start", func() {
		ctrl := gomock.NewController(GinkgoT())
		b := mock.NewMockBoundary(ctrl)
		b.EXPECT().Init().Return(abi.Fail)
		_, err := dia.Init(b)
		Expect(err).To(MatchError(dia.ErrInitFailed))
	})
})
