package availability

import (
	"reflect"
	"testing"

	"rentmate/constants"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{"single day", "2024-03-10", "2024-03-10", []string{"2024-03-10"}},
		{"three days", "2024-03-10", "2024-03-12", []string{"2024-03-10", "2024-03-11", "2024-03-12"}},
		{"month boundary", "2024-01-30", "2024-02-02", []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}},
		{"leap day", "2024-02-28", "2024-03-01", []string{"2024-02-28", "2024-02-29", "2024-03-01"}},
		{"end before start", "2024-03-12", "2024-03-10", nil},
		{"bad start", "10/03/2024", "2024-03-12", nil},
		{"bad end", "2024-03-10", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateRange(tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DateRange(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDateRangeLength(t *testing.T) {
	// Với start <= end, số phần tử phải bằng (end - start theo ngày) + 1
	got := DateRange("2024-03-01", "2024-03-31")
	if len(got) != 31 {
		t.Errorf("expected 31 dates, got %d", len(got))
	}
	if got[0] != "2024-03-01" || got[30] != "2024-03-31" {
		t.Errorf("unexpected endpoints: %s .. %s", got[0], got[len(got)-1])
	}
}

func TestClassifyPrecedence(t *testing.T) {
	today := "2024-04-10"
	bookings := []BookingWindow{
		{ID: 1, UserEmail: "renter-a@mail.com", StartDate: "2024-04-15", EndDate: "2024-04-17", Status: constants.BookingStatusConfirmed},
		{ID: 2, UserEmail: "renter-a@mail.com", StartDate: "2024-04-20", EndDate: "2024-04-21", Status: constants.BookingStatusPending},
		{ID: 3, UserEmail: "renter-b@mail.com", StartDate: "2024-04-15", EndDate: "2024-04-16", Status: constants.BookingStatusPending},
	}
	blocked := []string{"2024-04-16", "2024-04-25"}

	tests := []struct {
		name    string
		date    string
		viewer  string
		isOwner bool
		want    string
	}{
		{"past date", "2024-04-01", "renter-a@mail.com", false, constants.DateStatusPast},
		{"confirmed beats pending", "2024-04-15", "renter-b@mail.com", false, constants.DateStatusBooked},
		{"confirmed beats blocked", "2024-04-16", "", false, constants.DateStatusBooked},
		{"confirmed visible to stranger", "2024-04-15", "stranger@mail.com", false, constants.DateStatusBooked},
		{"pending for requester", "2024-04-20", "renter-a@mail.com", false, constants.DateStatusPending},
		{"pending for owner", "2024-04-20", "", true, constants.DateStatusPending},
		{"pending hidden from stranger", "2024-04-20", "renter-b@mail.com", false, constants.DateStatusAvailable},
		{"pending hidden from anonymous", "2024-04-20", "", false, constants.DateStatusAvailable},
		{"owner blocked", "2024-04-25", "renter-a@mail.com", false, constants.DateStatusOwnerBlocked},
		{"free date", "2024-04-30", "renter-a@mail.com", false, constants.DateStatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.date, today, bookings, blocked, tt.viewer, tt.isOwner)
			if got != tt.want {
				t.Errorf("Classify(%s, viewer=%q, owner=%v) = %s, want %s", tt.date, tt.viewer, tt.isOwner, got, tt.want)
			}
		})
	}
}

func TestClassifyEveryConfirmedDateIsBooked(t *testing.T) {
	today := "2024-03-01"
	bookings := []BookingWindow{
		{ID: 1, StartDate: "2024-03-10", EndDate: "2024-03-12", Status: constants.BookingStatusConfirmed},
	}

	for _, date := range DateRange("2024-03-10", "2024-03-12") {
		for _, viewer := range []string{"", "renter@mail.com", "owner@mail.com"} {
			got := Classify(date, today, bookings, nil, viewer, viewer == "owner@mail.com")
			if got != constants.DateStatusBooked {
				t.Errorf("date %s viewer %q: got %s, want booked", date, viewer, got)
			}
		}
	}
}

func TestValidateConfirmation(t *testing.T) {
	confirmed := []BookingWindow{
		{ID: 7, StartDate: "2024-03-10", EndDate: "2024-03-12", Status: constants.BookingStatusConfirmed},
	}

	tests := []struct {
		name      string
		proposed  []string
		confirmed []BookingWindow
		blocked   []string
		wantOK    bool
		wantDates []string
	}{
		{
			name:      "no overlap",
			proposed:  DateRange("2024-03-20", "2024-03-22"),
			confirmed: confirmed,
			wantOK:    true,
		},
		{
			name:      "partial overlap reports every shared date",
			proposed:  DateRange("2024-03-11", "2024-03-13"),
			confirmed: confirmed,
			wantOK:    false,
			wantDates: []string{"2024-03-11", "2024-03-12"},
		},
		{
			name:      "blocked date conflicts",
			proposed:  DateRange("2024-03-20", "2024-03-22"),
			confirmed: confirmed,
			blocked:   []string{"2024-03-21"},
			wantOK:    false,
			wantDates: []string{"2024-03-21"},
		},
		{
			name:      "blocked and booked both reported",
			proposed:  DateRange("2024-03-12", "2024-03-14"),
			confirmed: confirmed,
			blocked:   []string{"2024-03-14"},
			wantOK:    false,
			wantDates: []string{"2024-03-12", "2024-03-14"},
		},
		{
			name:      "empty proposed range",
			proposed:  nil,
			confirmed: confirmed,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateConfirmation(tt.proposed, tt.confirmed, tt.blocked)
			if got.OK != tt.wantOK {
				t.Fatalf("OK = %v, want %v (conflicts %v)", got.OK, tt.wantOK, got.ConflictDates)
			}
			if !tt.wantOK && !reflect.DeepEqual(got.ConflictDates, tt.wantDates) {
				t.Errorf("ConflictDates = %v, want %v", got.ConflictDates, tt.wantDates)
			}
		})
	}
}

func TestSubtractDatesKeepsOtherConfirmed(t *testing.T) {
	// Hủy booking 2024-03-10..12; ngày 12 vẫn còn booking confirmed khác cover
	blocked := []string{"2024-03-10", "2024-03-11", "2024-03-12", "2024-03-20"}
	removing := DateRange("2024-03-10", "2024-03-12")
	other := []BookingWindow{
		{ID: 9, StartDate: "2024-03-12", EndDate: "2024-03-14", Status: constants.BookingStatusConfirmed},
	}

	got := SubtractDates(blocked, removing, other, nil)
	want := []string{"2024-03-12", "2024-03-20"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubtractDates = %v, want %v", got, want)
	}
}

func TestSubtractDatesKeepsOwnerBlocked(t *testing.T) {
	blocked := []string{"2024-03-10", "2024-03-11", "2024-03-12"}
	removing := DateRange("2024-03-10", "2024-03-12")
	ownerBlocked := []string{"2024-03-11"}

	got := SubtractDates(blocked, removing, nil, ownerBlocked)
	want := []string{"2024-03-11"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubtractDates = %v, want %v", got, want)
	}
}

func TestSubtractDatesRemovesExactRange(t *testing.T) {
	// Hủy confirmed 2024-03-10..12 phải bỏ đúng ba ngày đó, không đụng tới
	// ngày của booking khác
	blocked := UnionDates([]string{"2024-04-01", "2024-04-02"}, DateRange("2024-03-10", "2024-03-12"))
	got := SubtractDates(blocked, DateRange("2024-03-10", "2024-03-12"), nil, nil)
	want := []string{"2024-04-01", "2024-04-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubtractDates = %v, want %v", got, want)
	}
}

func TestUnionDates(t *testing.T) {
	got := UnionDates([]string{"2024-03-10", "2024-03-11"}, []string{"2024-03-11", "2024-03-12"})
	want := []string{"2024-03-10", "2024-03-11", "2024-03-12"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnionDates = %v, want %v", got, want)
	}
}

func TestCompetingPendingThenConfirm(t *testing.T) {
	// Hai yêu cầu pending trùng ngày cùng tồn tại; xác nhận cái thứ nhất xong
	// thì cái thứ hai phải fail validation với đúng các ngày giao nhau
	first := BookingWindow{ID: 1, StartDate: "2024-05-01", EndDate: "2024-05-03", Status: constants.BookingStatusPending}
	second := BookingWindow{ID: 2, StartDate: "2024-05-03", EndDate: "2024-05-05", Status: constants.BookingStatusPending}

	// Tạo mới không bị chặn bởi pending
	res := ValidateConfirmation(DateRange(second.StartDate, second.EndDate), nil, nil)
	if !res.OK {
		t.Fatalf("pending request must not block creation, got conflicts %v", res.ConflictDates)
	}

	// Sau khi first được confirm, second không thể confirm
	first.Status = constants.BookingStatusConfirmed
	res = ValidateConfirmation(DateRange(second.StartDate, second.EndDate), []BookingWindow{first}, nil)
	if res.OK {
		t.Fatal("expected conflict after first booking confirmed")
	}
	want := []string{"2024-05-03"}
	if !reflect.DeepEqual(res.ConflictDates, want) {
		t.Errorf("ConflictDates = %v, want %v", res.ConflictDates, want)
	}
}
