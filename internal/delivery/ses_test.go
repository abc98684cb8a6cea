package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

type fakeSES struct {
	lastInput *sesv2.SendEmailInput
	err       error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("ses-1")}, nil
}

func TestSESSendSuccess(t *testing.T) {
	fake := &fakeSES{}
	sender := &SESSender{client: fake}

	res, err := sender.Send(context.Background(), &Message{
		FromName:  "Engage",
		FromEmail: "hello@engage.test",
		To:        "ana@example.com",
		Subject:   "Hi",
		HTML:      "<p>Hi</p>",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !res.Success || res.MessageID != "ses-1" || res.Provider != "ses" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := fake.lastInput.Destination.ToAddresses[0]; got != "ana@example.com" {
		t.Errorf("destination: %s", got)
	}
}

func TestSESSendRejection(t *testing.T) {
	fake := &fakeSES{err: errors.New("MessageRejected")}
	sender := &SESSender{client: fake}

	res, err := sender.Send(context.Background(), &Message{To: "bad@example.com"})
	if err != nil {
		t.Fatalf("rejection must not be a transport error: %v", err)
	}
	if res.Success || res.Error == nil {
		t.Fatalf("expected unsuccessful result, got %+v", res)
	}
}
