// Package mailbreeze provides a Go client SDK for the MailBreeze email
// platform: transactional sending, contact and list management, email
// verification, attachments, and automation enrollments.
//
// Basic usage:
//
//	client, err := mailbreeze.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Emails.Send(ctx, &mailbreeze.SendEmailParams{
//	    From:    "hello@yourdomain.com",
//	    To:      []string{"someone@example.com"},
//	    Subject: "Welcome",
//	    HTML:    "<p>Thanks for signing up!</p>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Message ID:", result.MessageID)
//
// Failed calls return a typed *Error. Match categories with errors.Is:
//
//	_, err = client.Emails.Get(ctx, "missing")
//	if errors.Is(err, mailbreeze.ErrNotFound) {
//	    // handle 404
//	}
//
// Requests that fail with a retryable server error (500, 502, 503, 504)
// or a transient network error are retried automatically with
// exponential backoff. Rate limits (429) are never retried; inspect the
// error's RetryAfterSeconds and back off in the caller.
package mailbreeze
