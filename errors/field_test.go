package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declare errors upfront so that DeepEqual can be used for comparison.
	var (
		invalidThresholdErr = Field("RequiredKeyNum", ErrInvalidArgument, "a")
		humanThresholdErr   = Field("RequiredKeyNum", ErrHuman, "b")
		emptyRoleErr        = Field("Roles.0", ErrEmpty, "role is required")
		setupMultiErr       = Field("Setup", Append(
			humanThresholdErr,
			Append(emptyRoleErr, ErrInvalidState),
		), "setup invalid")
	)

	cases := map[string]struct {
		Err   error
		Field string
		Want  []error
	}{
		"a single error found by the name": {
			Err:   invalidThresholdErr,
			Field: "RequiredKeyNum",
			Want:  []error{invalidThresholdErr},
		},
		"two error found by the name": {
			Err: Append(
				invalidThresholdErr,
				humanThresholdErr,
			),
			Field: "RequiredKeyNum",
			Want: []error{
				invalidThresholdErr,
				humanThresholdErr,
			},
		},
		"field can contain an error list": {
			Err:   setupMultiErr,
			Field: "Setup",
			Want:  []error{setupMultiErr},
		},
		"field nested in an error list is found": {
			Err:   Field("Setup", Append(humanThresholdErr, emptyRoleErr), ""),
			Field: "Roles.0",
			Want:  []error{emptyRoleErr},
		},
		"missing field": {
			Err:   invalidThresholdErr,
			Field: "Roles",
			Want:  nil,
		},
		"nil error": {
			Err:   nil,
			Field: "Roles",
			Want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.Err, tc.Field)
			if !reflect.DeepEqual(tc.Want, got) {
				for _, e := range tc.Want {
					t.Logf("want: %q", e)
				}
				for _, e := range got {
					t.Logf(" got: %q", e)
				}
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestFieldNil(t *testing.T) {
	if err := Field("Roles", nil, "never"); err != nil {
		t.Fatalf("want nil, got %q", err)
	}
	if err := AppendField(nil, "Roles", nil); err != nil {
		t.Fatalf("want nil, got %q", err)
	}
}

func TestFieldMessage(t *testing.T) {
	err := Field("RequiredKeyNum", ErrInvalidArgument, "must be at most %d", 3)
	if want := `field "RequiredKeyNum": must be at most 3: invalid argument`; err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
	err = AppendField(nil, "Roles", ErrEmpty)
	if want := `field "Roles": value is empty`; err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}
