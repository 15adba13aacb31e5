package notifier

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"paydesk/models"
)

// Payload is the JSON body delivered to the merchant callback URL after a
// disposition.
type Payload struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	UTR      string `json:"utr"`
	Merchant string `json:"merchant"`
	TS       string `json:"ts"`
}

// Notifier delivers best-effort merchant callbacks. Failures are logged and
// discarded; the admin-facing response never waits on or varies with the
// delivery outcome.
type Notifier struct {
	client *resty.Client
}

func New() *Notifier {
	return &Notifier{
		// Bound the wait so detached callbacks cannot pile up in-flight.
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

// Dispatch fires the callback on a detached goroutine and returns
// immediately. There is no channel back to the caller.
func (n *Notifier) Dispatch(txn models.TransactionQueue, status models.TransactionStatus) {
	go n.Send(txn, status)
}

// Send delivers one callback synchronously and swallows any failure.
func (n *Notifier) Send(txn models.TransactionQueue, status models.TransactionStatus) {
	if txn.MerchantCallbackURL == "" {
		return
	}

	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(Payload{
			ID:       txn.ID,
			Status:   string(status),
			UTR:      txn.UTR,
			Merchant: txn.MerchantName,
			TS:       time.Now().UTC().Format(time.RFC3339),
		}).
		Post(txn.MerchantCallbackURL)
	if err != nil {
		log.Printf("merchant callback failed for transaction %s: %v", txn.ID, err)
		return
	}
	if resp.IsError() {
		log.Printf("merchant callback for transaction %s returned %d", txn.ID, resp.StatusCode())
	}
}
