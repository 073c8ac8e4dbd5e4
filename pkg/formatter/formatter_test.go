package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPostTimeMatchesMillisecondDate(t *testing.T) {
	got := PostTime(1700000000000000000)

	require.True(t, got.Equal(time.UnixMilli(1700000000000)))
}

func TestPostTimeDropsSubMillisecondPart(t *testing.T) {
	got := PostTime(1700000000000999999)

	require.True(t, got.Equal(time.UnixMilli(1700000000000)))
}

func TestFormatPostDate(t *testing.T) {
	tests := []struct {
		name string
		ns   int64
		loc  *time.Location
		want string
	}{
		{
			name: "utc",
			ns:   1700000000000000000,
			loc:  time.UTC,
			want: "11/14/2023, 10:13:20 PM",
		},
		{
			name: "fixed offset",
			ns:   1700000000000000000,
			loc:  time.FixedZone("ICT", 7*60*60),
			want: "11/15/2023, 5:13:20 AM",
		},
		{
			name: "epoch",
			ns:   0,
			loc:  time.UTC,
			want: "1/1/1970, 12:00:00 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatPostDate(tt.ns, tt.loc))
		})
	}
}

func TestFormatPostDateNilLocationUsesLocal(t *testing.T) {
	ns := int64(1700000000000000000)

	require.Equal(t, time.UnixMilli(1700000000000).In(time.Local).Format(PostDateLayout), FormatPostDate(ns, nil))
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	require.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())

	loc, err = LoadLocation("Not/AZone")
	require.Error(t, err)
	require.Equal(t, time.Local, loc)
}
