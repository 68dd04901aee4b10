package email

import "fmt"

// Шаблоны писем. Простые строки: верстка писем живет на стороне
// маркетинга, бэкенд шлет минимальный транзакционный текст.

func renderTeamInvitation(company, acceptURL string) (text, html string) {
	text = fmt.Sprintf(
		"You have been invited to join the %s team.\n\n"+
			"Open the link below to accept the invitation and set your password.\n"+
			"The link is valid for 7 days.\n\n%s\n",
		company, acceptURL,
	)
	html = fmt.Sprintf(
		`<p>You have been invited to join the <b>%s</b> team.</p>
<p><a href="%s">Accept invitation</a> (valid for 7 days)</p>`,
		company, acceptURL,
	)
	return text, html
}

func renderVerification(verifyURL string) (text, html string) {
	text = fmt.Sprintf("Confirm your email address:\n\n%s\n", verifyURL)
	html = fmt.Sprintf(`<p><a href="%s">Confirm your email address</a></p>`, verifyURL)
	return text, html
}
