package speech

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

type fakeEngine struct {
	result LanguageResult
	got    []language.Tag
}

func (f *fakeEngine) SetLanguage(tag language.Tag) LanguageResult {
	f.got = append(f.got, tag)
	return f.result
}

type fakeControl struct {
	enabled bool
	calls   int
}

func (f *fakeControl) SetEnabled(v bool) {
	f.enabled = v
	f.calls++
}

func TestOnInit(t *testing.T) {
	tests := []struct {
		name        string
		status      Status
		result      LanguageResult
		wantEnabled bool
		wantLog     bool
		wantCall    bool
	}{
		{"available", StatusSuccess, LangAvailable, true, false, true},
		{"country available", StatusSuccess, LangCountryAvailable, true, false, true},
		{"missing data", StatusSuccess, LangMissingData, false, true, true},
		{"not supported", StatusSuccess, LangNotSupported, false, true, true},
		{"init failed", StatusError, LangAvailable, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			engine := &fakeEngine{result: tt.result}
			control := &fakeControl{}

			NewListener(engine, control, logger).OnInit(tt.status)

			if control.enabled != tt.wantEnabled {
				t.Errorf("enabled = %v, want %v", control.enabled, tt.wantEnabled)
			}
			if got := strings.Contains(buf.String(), "The language not supported!"); got != tt.wantLog {
				t.Errorf("logged = %v, want %v (%q)", got, tt.wantLog, buf.String())
			}
			if tt.wantLog && !strings.Contains(buf.String(), "tag=TTS") {
				t.Errorf("log lacks TTS tag: %q", buf.String())
			}
			if called := len(engine.got) > 0; called != tt.wantCall {
				t.Fatalf("SetLanguage called = %v, want %v", called, tt.wantCall)
			}
			if tt.wantCall && engine.got[0] != language.AmericanEnglish {
				t.Errorf("language = %v, want en-US", engine.got[0])
			}
		})
	}
}

func TestOnInitWithoutEngine(t *testing.T) {
	control := &fakeControl{}
	NewListener(nil, control, nil).OnInit(StatusSuccess)
	if !control.enabled {
		t.Error("nil engine must still enable the control")
	}
}

func TestStaticEngine(t *testing.T) {
	e := &StaticEngine{Supported: []language.Tag{language.AmericanEnglish}}
	if r := e.SetLanguage(language.AmericanEnglish); r == LangMissingData || r == LangNotSupported {
		t.Errorf("en-US result = %v", r)
	}
	if r := e.SetLanguage(language.Japanese); r != LangNotSupported {
		t.Errorf("ja result = %v, want not-supported", r)
	}
	if r := (&StaticEngine{}).SetLanguage(language.AmericanEnglish); r != LangMissingData {
		t.Errorf("empty engine result = %v, want missing-data", r)
	}
}
