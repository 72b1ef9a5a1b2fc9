package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/foodhive/model"
	"github.com/stretchr/testify/assert"
)

type fakeAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAck) Ack(bool) error {
	f.acked = true
	return nil
}

func (f *fakeAck) Nack(_ bool, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func TestDispatch(t *testing.T) {
	body := []byte(`{"orderId":"o-1","foodId":"f-1","foodName":"Pad Thai","ownerEmail":"owner@x.com","quantity":2,"totalPrice":25.5}`)

	tests := []struct {
		name        string
		body        []byte
		redelivered bool
		handlerErr  error
		wantCalled  bool
		wantAck     bool
		wantNack    bool
		wantRequeue bool
	}{
		{
			name:       "success: handled and acked",
			body:       body,
			wantCalled: true,
			wantAck:    true,
		},
		{
			name:    "malformed body is dropped",
			body:    []byte(`{not json`),
			wantAck: true,
		},
		{
			name:        "handler error requeues first delivery",
			body:        body,
			handlerErr:  errors.New("smtp down"),
			wantCalled:  true,
			wantNack:    true,
			wantRequeue: true,
		},
		{
			name:        "handler error on redelivery is discarded",
			body:        body,
			redelivered: true,
			handlerErr:  errors.New("smtp down"),
			wantCalled:  true,
			wantNack:    true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAck{}
			var got *model.OrderPlacedMessage
			handler := func(_ context.Context, msg *model.OrderPlacedMessage) error {
				got = msg
				return tt.handlerErr
			}

			dispatch(context.Background(), tt.body, tt.redelivered, ack, handler)

			assert.Equal(t, tt.wantCalled, got != nil)
			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, tt.wantNack, ack.nacked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
			if tt.wantCalled {
				assert.Equal(t, "o-1", got.OrderID)
				assert.Equal(t, int64(2), got.Quantity)
				assert.Equal(t, "25.5", got.TotalPrice.String())
			}
		})
	}
}
