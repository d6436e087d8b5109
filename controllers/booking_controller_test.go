package controllers

import (
	"testing"

	"rentmate/constants"
	"rentmate/models"
)

func TestViewerOwnsItem(t *testing.T) {
	item := models.Item{User: models.User{Email: "owner@example.com"}}

	tests := []struct {
		name        string
		viewerEmail string
		ownerEmail  string
		want        bool
	}{
		{"chủ đồ thật", "owner@example.com", "owner@example.com", true},
		{"người lạ khai email của mình làm chủ", "mallory@example.com", "mallory@example.com", false},
		{"cặp email lệch nhau", "owner@example.com", "mallory@example.com", false},
		{"thiếu ownerEmail", "owner@example.com", "", false},
		{"thiếu viewerEmail", "", "owner@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := viewerOwnsItem(item, tt.viewerEmail, tt.ownerEmail); got != tt.want {
				t.Errorf("viewerOwnsItem(%q, %q) = %v, muốn %v", tt.viewerEmail, tt.ownerEmail, got, tt.want)
			}
		})
	}
}

func TestVisibleToViewerHidesPendingFromStrangers(t *testing.T) {
	item := models.Item{User: models.User{Email: "owner@example.com"}}
	pending := models.Booking{
		UserEmail:  "renter@example.com",
		OwnerEmail: "owner@example.com",
		Status:     constants.BookingStatusPending,
	}
	confirmed := models.Booking{
		UserEmail:  "renter@example.com",
		OwnerEmail: "owner@example.com",
		Status:     constants.BookingStatusConfirmed,
	}

	// Người lạ tự nhận mình là chủ đồ qua query param: không qua được
	// viewerOwnsItem nên chỉ thấy booking confirmed.
	isOwner := viewerOwnsItem(item, "mallory@example.com", "mallory@example.com")
	if isOwner {
		t.Fatal("người lạ không được nhận là chủ đồ")
	}
	if visibleToViewer(pending, "mallory@example.com", isOwner) {
		t.Error("pending không được hiện với người lạ")
	}
	if !visibleToViewer(confirmed, "mallory@example.com", isOwner) {
		t.Error("confirmed phải hiện với mọi người")
	}

	// Chủ đồ thật thấy tất cả, người gửi yêu cầu thấy booking của mình.
	if !visibleToViewer(pending, "owner@example.com", viewerOwnsItem(item, "owner@example.com", "owner@example.com")) {
		t.Error("chủ đồ phải thấy booking pending")
	}
	if !visibleToViewer(pending, "renter@example.com", false) {
		t.Error("người gửi yêu cầu phải thấy booking pending của mình")
	}
}
