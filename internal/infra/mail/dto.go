package mail

type DownloadEmailData struct {
	DownloadLink string
}

type EmailSender struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	TemplateDir string
}
