package realtime

import "testing"

func TestCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{"subscribe is valid", Command{Action: ActionSubscribe, Channel: "announcements"}, false},
		{"unsubscribe is valid", Command{Action: ActionUnsubscribe, Channel: "presence-chat-room"}, false},
		{"unknown action", Command{Action: "listen", Channel: "announcements"}, true},
		{"missing channel", Command{Action: ActionSubscribe}, true},
		{"empty command", Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFrame(t *testing.T) {
	frame, err := NewFrame(EventSubscriptionSucceeded, "announcements", map[string]any{"channel": "announcements"})
	if err != nil {
		t.Fatalf("NewFrame() error = %v", err)
	}

	raw, err := frame.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("ToJSON() returned empty payload")
	}
}
