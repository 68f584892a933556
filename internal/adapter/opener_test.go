package adapter

import (
	"errors"
	"reflect"
	"testing"
)

type recordedCall struct {
	name string
	args []string
}

func newTestOpener(cfg OpenerConfig, available map[string]bool) (*Opener, *[]recordedCall) {
	var calls []recordedCall
	o := NewOpener(cfg, NullLogger())
	o.start = func(name string, args ...string) error {
		calls = append(calls, recordedCall{name: name, args: args})
		return nil
	}
	o.lookPath = func(name string) (string, error) {
		if available[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	return o, &calls
}

func TestOpener_ConfiguredCommand(t *testing.T) {
	o, calls := newTestOpener(OpenerConfig{Command: "firefox", Args: []string{"--new-tab"}}, nil)

	if err := o.Open("https://www.themoviedb.org/movie/27205"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	want := []recordedCall{{name: "firefox", args: []string{"--new-tab", "https://www.themoviedb.org/movie/27205"}}}
	if !reflect.DeepEqual(*calls, want) {
		t.Fatalf("calls = %#v, want %#v", *calls, want)
	}
}

func TestOpener_RejectsNonHTTP(t *testing.T) {
	o, calls := newTestOpener(OpenerConfig{Command: "firefox"}, nil)
	for _, u := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "/movie/1"} {
		if err := o.Open(u); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("Open(%q) error = %v, want ErrInvalidURL", u, err)
		}
	}
	if len(*calls) != 0 {
		t.Fatalf("calls = %v, want none", *calls)
	}
}

func TestOpener_NoHandlerAvailable(t *testing.T) {
	o, calls := newTestOpener(OpenerConfig{}, map[string]bool{})
	if err := o.Open("https://example.com"); err == nil {
		t.Fatalf("Open returned nil error with no handlers")
	}
	if len(*calls) != 0 {
		t.Fatalf("calls = %v, want none", *calls)
	}
}
