// Package dia is a host-side façade for driving a native HTTP engine through
// the opaque-handle boundary defined in package abi.
//
// It focuses on:
//   - Owning wrappers for every engine handle, freed exactly once, with
//     use-after-free caught on the host as ErrInvalidHandle
//   - Scoped marshaling of strings into NUL-terminated buffers
//   - A builder API for applications, controllers and middleware chains
//     whose failures are named after the boundary call that failed
//
// Getting started:
//
//	br, err := dia.Init(engine.New(engine.DefaultConfig()))
//	app, err := br.NewApplication()
//	defer app.Free()
//	app.Host("127.0.0.1").Port(3000).
//		Get("/hello/{name}", func(c *dia.Context) {
//			name, _, _ := c.Request.Param("name")
//			c.Response.JSONValue(map[string]string{"hello": name})
//		})
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Handlers do not return a response. Whatever they write through
// Context.Response before returning is what the engine delivers.
package dia
