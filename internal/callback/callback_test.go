package callback

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "no invocations",
			doc:  `<html><script>console.log("AF_init");</script></html>`,
			want: nil,
		},
		{
			name: "empty document",
			doc:  "",
			want: nil,
		},
		{
			name: "single invocation",
			doc:  `AF_initDataCallback({key: 'quote', data:[1,2,3]});`,
			want: []string{`{key: 'quote', data:[1,2,3]}`},
		},
		{
			name: "whitespace around parens",
			doc:  "AF_initDataCallback ( {key: 'ds:1'} ) ;",
			want: []string{`{key: 'ds:1'}`},
		},
		{
			name: "newlines inside argument",
			doc:  "AF_initDataCallback({key: 'ds:2',\n hash: '7',\n data:[\n1]\n});",
			want: []string{"{key: 'ds:2',\n hash: '7',\n data:[\n1]\n}"},
		},
		{
			name: "document order",
			doc: `<script>AF_initDataCallback({key: 'ds:0', data:[]});</script>` +
				`<p>filler</p>` +
				`<script>AF_initDataCallback({key: 'ds:1', data:[]});</script>` +
				`<script>AF_initDataCallback({data:[]});</script>`,
			want: []string{
				`{key: 'ds:0', data:[]}`,
				`{key: 'ds:1', data:[]}`,
				`{data:[]}`,
			},
		},
		{
			name: "truncates at nearest close",
			doc:  `AF_initDataCallback({key: 'a', data: {x: 1}); rest: 2});`,
			want: []string{`{key: 'a', data: {x: 1}`},
		},
		{
			name: "vertical tab around argument",
			doc:  "AF_initDataCallback(\v{key: 'q'}\v);",
			want: []string{`{key: 'q'}`},
		},
		{
			name: "unicode spaces around parens",
			doc:  "AF_initDataCallback\u00a0(\u2003{key: 'q'}\u0085)\u2028;",
			want: []string{`{key: 'q'}`},
		},
		{
			name: "missing semicolon",
			doc:  `AF_initDataCallback({key: 'a'})`,
			want: nil,
		},
		{
			name: "argument without braces",
			doc:  `AF_initDataCallback(payload);`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.doc)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/finance_dump.html")
	if err != nil {
		t.Fatalf("reading test fixture: %v", err)
	}

	args := Extract(string(data))
	if len(args) != 3 {
		t.Fatalf("expected 3 invocations, got %d", len(args))
	}

	var keys []string
	for _, a := range args {
		keys = append(keys, Key(a))
	}
	want := []string{"ds:0", "ds:1", Unknown}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	for i, a := range args {
		if !strings.HasPrefix(a, "{") || !strings.HasSuffix(a, "}") {
			t.Errorf("args[%d] = %q, want braces kept", i, a)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"simple", `{key: 'abc', data: []}`, "abc"},
		{"no space", `{key:'ds:3'}`, "ds:3"},
		{"extra whitespace", "{key:\n\t 'ds:4'}", "ds:4"},
		{"vertical tab", "{key:\v'ds:5'}", "ds:5"},
		{"no-break space", "{key:\u00a0'ds:6'}", "ds:6"},
		{"missing", `{hash: '1', data: []}`, Unknown},
		{"double quoted", `{key: "abc"}`, Unknown},
		{"empty value", `{key: ''}`, Unknown},
		{"first wins", `{key: 'one', inner: {key: 'two'}}`, "one"},
		{"nested only", `{data: [{key: 'inner'}]}`, "inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.arg); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}
