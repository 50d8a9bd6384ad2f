package model

import (
	"errors"
	"testing"
)

func element(buttons int) CarouselElement {
	e := CarouselElement{Title: "Minimalist Watch", Subtitle: "$149.99"}
	for i := 0; i < buttons; i++ {
		e.Buttons = append(e.Buttons, Button{Type: ButtonTypeWebURL, Title: "Shop Now", URL: "https://example.com/watch"})
	}
	return e
}

func elements(n int) []CarouselElement {
	out := make([]CarouselElement, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, element(1))
	}
	return out
}

func TestNewCarouselMessageBounds(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{name: "zero elements", count: 0, wantErr: true},
		{name: "one element", count: 1, wantErr: false},
		{name: "ten elements", count: 10, wantErr: false},
		{name: "eleven elements", count: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCarouselMessage(elements(tt.count))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCarouselMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidMessage) {
				t.Errorf("error mismatch: got %v, want %v", err, ErrInvalidMessage)
			}
		})
	}
}

func TestNewCarouselMessageElements(t *testing.T) {
	tests := []struct {
		name    string
		el      CarouselElement
		wantErr bool
	}{
		{name: "three buttons", el: element(3), wantErr: false},
		{name: "no buttons", el: element(0), wantErr: true},
		{name: "four buttons", el: element(4), wantErr: true},
		{name: "missing title", el: CarouselElement{Buttons: element(1).Buttons}, wantErr: true},
		{
			name: "web_url without url",
			el: CarouselElement{Title: "t", Buttons: []Button{
				{Type: ButtonTypeWebURL, Title: "Shop"},
			}},
			wantErr: true,
		},
		{
			name: "postback with payload",
			el: CarouselElement{Title: "t", Buttons: []Button{
				{Type: ButtonTypePostback, Title: "More", Payload: "MORE_INFO"},
			}},
			wantErr: false,
		},
		{
			name: "postback without payload",
			el: CarouselElement{Title: "t", Buttons: []Button{
				{Type: ButtonTypePostback, Title: "More"},
			}},
			wantErr: true,
		},
		{
			name: "unknown button type",
			el: CarouselElement{Title: "t", Buttons: []Button{
				{Type: "phone_number", Title: "Call", Payload: "+1"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCarouselMessage([]CarouselElement{tt.el})
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCarouselMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTextMessage(t *testing.T) {
	m, err := NewTextMessage("Here is the link!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind() != MessageKindText {
		t.Errorf("kind mismatch: got %s, want %s", m.Kind(), MessageKindText)
	}

	if _, err := NewTextMessage(""); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("error mismatch: got %v, want %v", err, ErrInvalidMessage)
	}
}
