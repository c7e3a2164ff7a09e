// Copyright 2026 The Seatkit Authors
// SPDX-License-Identifier: Apache-2.0

package vtswitch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/seatkit/seatkit/lib/console"
)

// fakeKernel is a stateful in-memory VT subsystem. All VT state lives
// here; fakeConn handles delegate to it, so mode changes made through
// one handle are visible through the next, like the real kernel. Every
// call is appended to calls for ordering assertions, and opens/closes
// are counted for handle-hygiene assertions.
type fakeKernel struct {
	mu sync.Mutex

	// Injected failures. Slice-valued errors are consumed one per
	// call, modeling interrupted-then-success sequences; nil entries
	// mean success.
	masterOpenErr      error
	vtOpenErr          error
	stateErr           error
	openQueryErr       error
	modeErr            error
	displayModeErr     error
	setModeErr         error
	setDisplayModeErr  error
	activateErrs       []error
	waitActiveErrs     []error
	acknowledgeErr     error

	// Kernel state.
	active      int
	freeVT      int
	mode        console.Mode
	displayMode console.DisplayMode

	// Recording.
	calls  []string
	opens  int
	closes int
	acks   []console.ReleaseAck

	// ackDelivered, when non-nil, receives every acknowledgment. Used
	// by handshake tests to synchronize with the serving goroutine.
	ackDelivered chan console.ReleaseAck
}

func (k *fakeKernel) record(format string, args ...any) {
	k.calls = append(k.calls, fmt.Sprintf(format, args...))
}

func (k *fakeKernel) OpenMaster() (Conn, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.masterOpenErr != nil {
		k.record("open-master-failed")
		return nil, k.masterOpenErr
	}
	k.opens++
	k.record("open master")
	return &fakeConn{kernel: k, name: "master"}, nil
}

func (k *fakeKernel) OpenVT(vt int) (Conn, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.vtOpenErr != nil {
		k.record("open-vt-failed %d", vt)
		return nil, k.vtOpenErr
	}
	k.opens++
	k.record("open tty%d", vt)
	return &fakeConn{kernel: k, name: fmt.Sprintf("tty%d", vt)}, nil
}

// popError consumes the next error from a sequence, nil when exhausted.
func popError(sequence *[]error) error {
	if len(*sequence) == 0 {
		return nil
	}
	err := (*sequence)[0]
	*sequence = (*sequence)[1:]
	return err
}

type fakeConn struct {
	kernel *fakeKernel
	name   string
}

func (c *fakeConn) State() (int, error) {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: state", c.name)
	if k.stateErr != nil {
		return 0, k.stateErr
	}
	return k.active, nil
}

func (c *fakeConn) OpenQuery() (int, error) {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: openqry", c.name)
	if k.openQueryErr != nil {
		return 0, k.openQueryErr
	}
	return k.freeVT, nil
}

func (c *fakeConn) Mode() (console.Mode, error) {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: getmode", c.name)
	if k.modeErr != nil {
		return console.Mode{}, k.modeErr
	}
	return k.mode, nil
}

func (c *fakeConn) SetMode(mode console.Mode) error {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: setmode %v", c.name, mode.Switch)
	if k.setModeErr != nil {
		return k.setModeErr
	}
	k.mode = mode
	return nil
}

func (c *fakeConn) DisplayMode() (console.DisplayMode, error) {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: kdgetmode", c.name)
	if k.displayModeErr != nil {
		return 0, k.displayModeErr
	}
	return k.displayMode, nil
}

func (c *fakeConn) SetDisplayMode(mode console.DisplayMode) error {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: kdsetmode %v", c.name, mode)
	if k.setDisplayModeErr != nil {
		return k.setDisplayModeErr
	}
	k.displayMode = mode
	return nil
}

func (c *fakeConn) Activate(vt int) error {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: activate %d", c.name, vt)
	if err := popError(&k.activateErrs); err != nil {
		return err
	}
	k.active = vt
	return nil
}

func (c *fakeConn) WaitActive(vt int) error {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: waitactive %d", c.name, vt)
	return popError(&k.waitActiveErrs)
}

func (c *fakeConn) AcknowledgeRelease(ack console.ReleaseAck) error {
	k := c.kernel
	k.mu.Lock()
	k.record("%s: reldisp %d", c.name, int(ack))
	k.acks = append(k.acks, ack)
	err := k.acknowledgeErr
	delivered := k.ackDelivered
	k.mu.Unlock()
	if delivered != nil {
		delivered <- ack
	}
	return err
}

func (c *fakeConn) Clear() error {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.record("%s: clear", c.name)
	return nil
}

func (c *fakeConn) Close() error {
	k := c.kernel
	k.mu.Lock()
	defer k.mu.Unlock()
	k.closes++
	k.record("%s: close", c.name)
	return nil
}

// fakeNotifier records signal registrations in the kernel's call log
// (for ordering assertions) and keeps the registered channel so tests
// can deliver signals by hand.
type fakeNotifier struct {
	kernel  *fakeKernel
	mu      sync.Mutex
	ch      chan<- os.Signal
	signals []os.Signal
	stops   int
}

func (n *fakeNotifier) Notify(ch chan<- os.Signal, signals ...os.Signal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ch = ch
	n.signals = signals
	n.kernel.mu.Lock()
	n.kernel.record("signal-notify")
	n.kernel.mu.Unlock()
}

func (n *fakeNotifier) Stop(ch chan<- os.Signal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stops++
}

func (n *fakeNotifier) deliver(sig os.Signal) {
	n.mu.Lock()
	ch := n.ch
	n.mu.Unlock()
	ch <- sig
}

// callIndex returns the position of the first call containing the
// substring, or -1.
func callIndex(calls []string, substring string) int {
	for i, call := range calls {
		if strings.Contains(call, substring) {
			return i
		}
	}
	return -1
}

// newTestController wires a controller to the fakes with a discarding
// logger.
func newTestController(kernel *fakeKernel) (*Controller, *fakeNotifier) {
	notifier := &fakeNotifier{kernel: kernel}
	controller := newController(kernel, notifier, Params{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return controller, notifier
}
