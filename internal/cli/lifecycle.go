// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cli

import (
	"context"
	"time"
)

// shutdownTimeout bounds Stop once the run context is done.
const shutdownTimeout = 10 * time.Second

// Lifecycle is a background server kept alive after a command's work is done,
// such as the smoke command's metrics endpoint.
type Lifecycle interface {
	// Start begins serving and returns immediately.
	Start()
	// Stop shuts the server down, giving up when ctx expires.
	Stop(ctx context.Context)
}

// RunServer parks the command until ctx is cancelled by SIGINT or SIGTERM,
// stops server within shutdownTimeout and then runs cleanupFns in order, so
// exporters flush after the last scrape.
func RunServer(
	ctx context.Context,
	server Lifecycle,
	cleanupFns ...func(),
) {
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	server.Stop(stopCtx)

	for _, fn := range cleanupFns {
		fn()
	}
}
