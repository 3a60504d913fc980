package quorum_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexademical address printing", t, func() {
		b := []byte("ABCD123456LHB")
		addr := quorum.Address(b)

		So(addr.String(), ShouldNotEqual, fmt.Sprintf("%X", []byte("abcd")))
		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", b))
	})

	Convey("test nil address printing", t, func() {
		So(quorum.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("test hexademical condition printing", t, func() {
		cond := quorum.NewCondition("foo", "bar", []byte("ABCD123456LHB"))

		So(cond.String(), ShouldNotEqual, fmt.Sprintf("%X", cond))
		So(cond.String(), ShouldStartWith, "foo/bar/")
	})
}

func TestConditionAddress(t *testing.T) {
	c := quorum.NewCondition("multisig", "usage", []byte{0, 0, 0, 1})
	addr := c.Address()

	require.NoError(t, c.Validate())
	require.NoError(t, addr.Validate())
	assert.Len(t, addr, quorum.AddressLength)
	assert.True(t, addr.Equals(quorum.NewCondition("multisig", "usage", []byte{0, 0, 0, 1}).Address()))
	assert.False(t, addr.Equals(quorum.NewCondition("multisig", "usage", []byte{0, 0, 0, 2}).Address()))
	assert.Nil(t, quorum.NewAddress(nil))

	ext, typ, data, err := c.Parse()
	require.NoError(t, err)
	assert.Equal(t, "multisig", ext)
	assert.Equal(t, "usage", typ)
	assert.Equal(t, []byte{0, 0, 0, 1}, data)

	_, _, _, err = quorum.Condition("no-slashes").Parse()
	assert.True(t, errors.ErrInvalidArgument.Is(err))
	assert.True(t, errors.ErrInvalidArgument.Is(quorum.Condition("a/b/c").Validate()))
}

func TestParseAddress(t *testing.T) {
	addr := quorum.NewCondition("foo", "bar", []byte("conditiondata")).Address()
	b32, err := addr.Bech32("tiov")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(b32, "tiov1"))

	cases := map[string]struct {
		enc      string
		wantErr  *errors.Error
		wantAddr quorum.Address
	}{
		"default decoding": {
			enc:      addr.String(),
			wantAddr: addr,
		},
		"hex decoding": {
			enc:      "hex:" + addr.String(),
			wantAddr: addr,
		},
		"cond decoding": {
			enc:      "cond:foo/bar/636f6e646974696f6e64617461",
			wantAddr: addr,
		},
		"bech32 decoding": {
			enc:      "bech32:" + b32,
			wantAddr: addr,
		},
		"broken bech32 checksum": {
			enc:     "bech32:" + b32[:len(b32)-1] + flip(b32[len(b32)-1]),
			wantErr: errors.ErrInvalidArgument,
		},
		"hex address of a wrong length": {
			enc:     "hex:6865782d61646472",
			wantErr: errors.ErrInvalidArgument,
		},
		"invalid hex": {
			enc:     "hex:zz",
			wantErr: errors.ErrInvalidArgument,
		},
		"invalid condition format": {
			enc:     "cond:foo/636f6e646974696f6e64617461",
			wantErr: errors.ErrInvalidArgument,
		},
		"unknown format": {
			enc:     "foobar:xxx",
			wantErr: errors.ErrInvalidType,
		},
		"zero address": {
			enc:      "",
			wantAddr: nil,
		},
		"zero cond address": {
			enc:      "cond:",
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := quorum.ParseAddress(tc.enc)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(got, tc.wantAddr) {
				t.Fatalf("got address: %q", got)
			}
		})
	}
}

func flip(c byte) string {
	if c == 'q' {
		return "p"
	}
	return "q"
}

func TestAddressJSON(t *testing.T) {
	addr := quorum.NewCondition("foo", "bar", []byte("conditiondata")).Address()

	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var got quorum.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)

	err = json.Unmarshal([]byte(`"foobar:xxx"`), &got)
	assert.True(t, errors.ErrInvalidType.Is(err))
}

func TestConditionUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json          string
		wantErr       *errors.Error
		wantCondition quorum.Condition
	}{
		"default decoding": {
			json:          `"foo/bar/636f6e646974696f6e64617461"`,
			wantCondition: quorum.NewCondition("foo", "bar", []byte("conditiondata")),
		},
		"invalid condition format": {
			json:    `"foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInvalidArgument,
		},
		"invalid condition data": {
			json:    `"foo/bar/zzzzz"`,
			wantErr: errors.ErrInvalidArgument,
		},
		"zero address": {
			json:          `""`,
			wantCondition: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got quorum.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !got.Equals(tc.wantCondition) {
				t.Fatalf("expected %q but got condition: %q", tc.wantCondition, got)
			}
		})
	}
}

func TestConditionMarshalJSON(t *testing.T) {
	cases := map[string]struct {
		source   quorum.Condition
		wantJson string
	}{
		"cond encoding": {
			source:   quorum.NewCondition("foo", "bar", []byte("conditiondata")),
			wantJson: `"foo/bar/636F6E646974696F6E64617461"`,
		},
		"nil encoding": {
			source:   nil,
			wantJson: `""`,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := json.Marshal(tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.wantJson, string(got))
		})
	}
}
