package notifier

// TextNotifier is the minimal seam for pushing a text alert to an
// operator channel. Kept small so services can depend on it without
// importing a concrete transport such as Telegram.
type TextNotifier interface {
	SendText(text string) error
}
