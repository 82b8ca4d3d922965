package assert

import (
	"testing"

	"github.com/iov-one/adminnft/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     error
		got      error
		wantFail bool
	}{
		"same error":       {want: errors.ErrNotFound, got: errors.ErrNotFound},
		"both nil":         {want: nil, got: nil},
		"wrapped":          {want: errors.ErrNotFound, got: errors.Wrap(errors.ErrNotFound, "token")},
		"different error":  {want: errors.ErrNotFound, got: errors.ErrUnauthorized, wantFail: true},
		"missing error":    {want: errors.ErrNotFound, got: nil, wantFail: true},
		"unexpected error": {want: nil, got: errors.ErrUnauthorized, wantFail: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			IsErr(mock, tc.want, tc.got)
			if failed := mock.failcalls > 0; failed != tc.wantFail {
				t.Fatalf("unexpected failure state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	cases := map[string]struct {
		err      error
		field    string
		want     *errors.Error
		wantFail bool
	}{
		"single error found": {
			err:   errors.Field("Owner", errors.ErrEmpty, "required"),
			field: "Owner",
			want:  errors.ErrEmpty,
		},
		"nil ensures no error for another field": {
			err:   errors.Field("Owner", errors.ErrEmpty, "required"),
			field: "Admin",
		},
		"nil fails when an error is present": {
			err:      errors.Field("Owner", errors.ErrEmpty, "required"),
			field:    "Owner",
			wantFail: true,
		},
		"two errors for one field": {
			err: errors.Append(
				errors.Field("Owner", errors.ErrEmpty, "first"),
				errors.Field("Owner", errors.ErrInput, "second"),
			),
			field:    "Owner",
			want:     errors.ErrEmpty,
			wantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			FieldError(mock, tc.err, tc.field, tc.want)
			if failed := mock.failcalls > 0; failed != tc.wantFail {
				t.Fatalf("unexpected failure state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestNilAndEqual(t *testing.T) {
	mock := &tmock{TB: t}
	var p *int
	Nil(mock, p)
	Nil(mock, nil)
	Equal(mock, []byte("a"), []byte("a"))
	if mock.failcalls != 0 {
		t.Fatalf("want no failures, got %d", mock.failcalls)
	}

	Nil(mock, 1)
	Equal(mock, 1, 2)
	if mock.failcalls != 2 {
		t.Fatalf("want two failures, got %d", mock.failcalls)
	}
}

// tmock counts failures instead of stopping the test.
type tmock struct {
	testing.TB
	failcalls int
}

func (t *tmock) Errorf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.failcalls++
}

func (t *tmock) Fatal(args ...interface{}) {
	t.TB.Log(args...)
	t.failcalls++
}

func (t *tmock) Fatalf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.failcalls++
}
