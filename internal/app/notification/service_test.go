package notification

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"chowline/internal/adapter/logger"
	"chowline/internal/interfaces"

	"github.com/stretchr/testify/assert"
)

type fakePush struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (p *fakePush) Send(ctx context.Context, n interfaces.PushNotification) error {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	p.calls.Add(1)
	return p.err
}

type fakeSMS struct {
	calls atomic.Int32
	to    atomic.Value
	err   error
}

func (s *fakeSMS) Send(ctx context.Context, to, text string) error {
	s.to.Store(to)
	s.calls.Add(1)
	return s.err
}

func summary() interfaces.OrderSummary {
	return interfaces.OrderSummary{
		Reference:    "PSK123",
		CustomerName: "Ada",
		Phone:        "+2348000000000",
		TotalAmount:  5000,
	}
}

func TestDispatchSendsBoth(t *testing.T) {
	push := &fakePush{}
	sms := &fakeSMS{}
	svc := NewService(push, sms, logger.New("test"))

	svc.Dispatch(context.Background(), summary())

	assert.Equal(t, int32(1), push.calls.Load())
	assert.Equal(t, int32(1), sms.calls.Load())
	assert.Equal(t, "+2348000000000", sms.to.Load())
}

func TestDispatchFailuresAreIndependent(t *testing.T) {
	push := &fakePush{err: errors.New("push gateway returned 500")}
	sms := &fakeSMS{}
	svc := NewService(push, sms, logger.New("test"))

	// Must not panic or propagate; SMS still goes out.
	svc.Dispatch(context.Background(), summary())

	assert.Equal(t, int32(1), push.calls.Load())
	assert.Equal(t, int32(1), sms.calls.Load())
}

func TestDispatchWaitsForSlowCall(t *testing.T) {
	push := &fakePush{delay: 50 * time.Millisecond}
	sms := &fakeSMS{}
	svc := NewService(push, sms, logger.New("test"))

	svc.Dispatch(context.Background(), summary())

	// Dispatch only returns after the slow push attempt finished.
	assert.Equal(t, int32(1), push.calls.Load())
}

func TestDispatchSkipsSMSWithoutPhone(t *testing.T) {
	push := &fakePush{}
	sms := &fakeSMS{}
	svc := NewService(push, sms, logger.New("test"))

	s := summary()
	s.Phone = ""
	svc.Dispatch(context.Background(), s)

	assert.Equal(t, int32(1), push.calls.Load())
	assert.Equal(t, int32(0), sms.calls.Load())
}
