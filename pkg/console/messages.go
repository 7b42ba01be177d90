package console

// Messages is the text shown to operators. Format verbs are noted per field.
type Messages struct {
	StatusUpdated      string // %s: new status
	StatusUpdateFailed string

	DonationCreated      string
	DonationUpdated      string
	DonationCreateFailed string
	DonationUpdateFailed string

	VolumeRequired        string
	VolumeInvalid         string
	DateRequired          string
	DateBeforeAppointment string
	BloodTypeRequired     string
	BloodTypeInvalid      string

	ConfirmApprove string
	ConfirmReject  string

	SurveyTitle        string // %s: appointment id
	SurveyQuestion     string // %d: question number
	NoAnswer           string
	Unknown            string
	NoSurvey           string
	DonationTitleNew   string // %s: appointment id
	DonationTitleView  string // %s: appointment id
	RecordDonation     string
	ViewDonation       string
	EditDonation       string
	CancelEditDonation string
}

func EnglishMessages() Messages {
	return Messages{
		StatusUpdated:      "Status updated: %s",
		StatusUpdateFailed: "Failed to update the appointment status",

		DonationCreated:      "Donation information saved",
		DonationUpdated:      "Donation information updated",
		DonationCreateFailed: "Failed to save donation information",
		DonationUpdateFailed: "Failed to update donation information",

		VolumeRequired:        "Select the donated volume",
		VolumeInvalid:         "Volume must be 200, 350 or 500 ml",
		DateRequired:          "Select the donation date",
		DateBeforeAppointment: "Donation date cannot be before the appointment date",
		BloodTypeRequired:     "Select the blood type",
		BloodTypeInvalid:      "Blood type must be A, B, AB or O",

		ConfirmApprove: "Approve this survey?",
		ConfirmReject:  "Reject this survey?",

		SurveyTitle:        "Survey - Appointment #%s",
		SurveyQuestion:     "%d. Survey question",
		NoAnswer:           "No answer",
		Unknown:            "Unknown",
		NoSurvey:           "No survey data.",
		DonationTitleNew:   "Record donation - Appointment #%s",
		DonationTitleView:  "Donation details - Appointment #%s",
		RecordDonation:     "Record donation",
		ViewDonation:       "View donation",
		EditDonation:       "Edit",
		CancelEditDonation: "Cancel editing",
	}
}

func VietnameseMessages() Messages {
	return Messages{
		StatusUpdated:      "Cập nhật trạng thái thành công: %s",
		StatusUpdateFailed: "Có lỗi xảy ra khi cập nhật trạng thái",

		DonationCreated:      "Lưu thông tin hiến máu thành công!",
		DonationUpdated:      "Cập nhật thành công!",
		DonationCreateFailed: "Lỗi khi lưu thông tin hiến máu",
		DonationUpdateFailed: "Lỗi khi cập nhật",

		VolumeRequired:        "Nhập số lượng hiến máu",
		VolumeInvalid:         "Số lượng phải là 200, 350 hoặc 500 ml",
		DateRequired:          "Chọn ngày hiến máu",
		DateBeforeAppointment: "Ngày hiến máu không được trước ngày lịch hẹn!",
		BloodTypeRequired:     "Chọn nhóm máu",
		BloodTypeInvalid:      "Nhóm máu không hợp lệ",

		ConfirmApprove: "Bạn có chắc chắn muốn phê duyệt phiếu này?",
		ConfirmReject:  "Bạn có chắc chắn muốn từ chối phiếu này?",

		SurveyTitle:        "Phiếu khảo sát - Mã lịch hẹn #%s",
		SurveyQuestion:     "%d. Câu hỏi khảo sát",
		NoAnswer:           "Không có câu trả lời",
		Unknown:            "Không rõ",
		NoSurvey:           "Không có dữ liệu phiếu.",
		DonationTitleNew:   "Nhập thông tin hiến máu - Mã lịch hẹn #%s",
		DonationTitleView:  "Thông tin hiến máu - Mã lịch hẹn #%s",
		RecordDonation:     "Nhập thông tin hiến máu",
		ViewDonation:       "Xem thông tin hiến máu",
		EditDonation:       "Chỉnh sửa",
		CancelEditDonation: "Hủy chỉnh sửa",
	}
}
