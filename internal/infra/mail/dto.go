package mail

type SubmissionNoticeData struct {
	FullName     string
	BusinessName string
	Industry     string
	Phone        string
	Help         string
	ReceivedAt   string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
