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

package dispatch_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/dispatch"
)

var _ = Describe("Chain", func() {
	recorder := func(log *[]int, id int, code abi.Status) abi.Callback {
		return func(req, resp abi.Handle) abi.Status {
			*log = append(*log, id)
			return code
		}
	}

	It("runs entries in registration order then the terminal handler", func() {
		var log []int
		c := &dispatch.Chain{}
		Expect(c.Append(recorder(&log, 1, abi.OK))).To(Succeed())
		Expect(c.Append(recorder(&log, 2, abi.OK))).To(Succeed())

		out := dispatch.Run(1, 2, recorder(&log, 99, abi.OK), c)
		Expect(log).To(Equal([]int{1, 2, 99}))
		Expect(out).To(Equal(dispatch.Outcome{Ran: 2, Terminal: true}))
	})

	It("short-circuits on the first nonzero status", func() {
		var log []int
		c := &dispatch.Chain{}
		for i, code := range []abi.Status{0, 0, -1, 0} {
			Expect(c.Append(recorder(&log, i+1, code))).To(Succeed())
		}

		out := dispatch.Run(1, 2, recorder(&log, 99, abi.OK), c)
		Expect(log).To(Equal([]int{1, 2, 3}))
		Expect(out.Ran).To(Equal(3))
		Expect(out.Aborted).To(BeTrue())
		Expect(out.Code).To(Equal(abi.Status(-1)))
		Expect(out.Terminal).To(BeFalse())
	})

	It("runs stages in order and stops across stage boundaries", func() {
		var log []int
		app, ctrl := &dispatch.Chain{}, &dispatch.Chain{}
		Expect(app.Append(recorder(&log, 1, abi.OK))).To(Succeed())
		Expect(ctrl.Append(recorder(&log, 2, abi.Status(7)))).To(Succeed())
		Expect(ctrl.Append(recorder(&log, 3, abi.OK))).To(Succeed())

		out := dispatch.Run(1, 2, recorder(&log, 99, abi.OK), app, ctrl)
		Expect(log).To(Equal([]int{1, 2}))
		Expect(out.Code).To(Equal(abi.Status(7)))
	})

	It("discards the terminal handler's status", func() {
		out := dispatch.Run(1, 2, func(req, resp abi.Handle) abi.Status { return abi.Fail })
		Expect(out.Aborted).To(BeFalse())
		Expect(out.Terminal).To(BeTrue())
	})

	It("passes the handles through unchanged", func() {
		var gotReq, gotResp abi.Handle
		c := &dispatch.Chain{}
		Expect(c.Append(func(req, resp abi.Handle) abi.Status {
			gotReq, gotResp = req, resp
			return abi.OK
		})).To(Succeed())
		dispatch.Run(11, 22, nil, c)
		Expect(gotReq).To(Equal(abi.Handle(11)))
		Expect(gotResp).To(Equal(abi.Handle(22)))
	})

	It("rejects changes once frozen", func() {
		c := &dispatch.Chain{}
		Expect(c.Append(recorder(new([]int), 1, abi.OK))).To(Succeed())
		c.Freeze()
		c.Freeze()
		Expect(c.Frozen()).To(BeTrue())
		Expect(c.Append(recorder(new([]int), 2, abi.OK))).To(MatchError(dispatch.ErrFrozen))
		Expect(c.Extend(&dispatch.Chain{})).To(MatchError(dispatch.ErrFrozen))
		Expect(c.Len()).To(Equal(1))
	})

	It("rejects nil entries", func() {
		c := &dispatch.Chain{}
		Expect(c.Append(nil)).To(MatchError(dispatch.ErrNilEntry))
	})

	It("extends with a snapshot of another chain", func() {
		var log []int
		src, dst := &dispatch.Chain{}, &dispatch.Chain{}
		Expect(src.Append(recorder(&log, 1, abi.OK))).To(Succeed())
		Expect(dst.Extend(src)).To(Succeed())
		Expect(src.Append(recorder(&log, 2, abi.OK))).To(Succeed())
		Expect(dst.Len()).To(Equal(1))
	})

	It("is safe to run concurrently while frozen", func() {
		c := &dispatch.Chain{}
		var mu sync.Mutex
		count := 0
		Expect(c.Append(func(req, resp abi.Handle) abi.Status {
			mu.Lock()
			count++
			mu.Unlock()
			return abi.OK
		})).To(Succeed())
		c.Freeze()

		var wg sync.WaitGroup
		const n = 50
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() {
				defer wg.Done()
				dispatch.Run(1, 2, nil, c)
			}()
		}
		wg.Wait()
		Expect(count).To(Equal(n))
	})
})
