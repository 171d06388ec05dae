package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/utils/pagination"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// maxErrorBody bounds how much of a failed reply is read into the error message.
const maxErrorBody = 64 << 10

// Client is a DocumentGateway backed by the accounting backend's HTTP API.
// Every call is a single attempt. Failed submissions surface as *apperrors.SubmissionError,
// failed reads as *apperrors.BackendError.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	creds      *clientcredentials.Config
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClientCredentials authenticates every request with an OAuth2 client-credentials token.
func WithClientCredentials(clientID, clientSecret, tokenURL string) Option {
	return func(c *Client) {
		c.creds = &clientcredentials.Config{ClientID: clientID, ClientSecret: clientSecret, TokenURL: tokenURL}
	}
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: scheme and host are required", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: u,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: timeout}
	}
	if c.creds != nil {
		// The token source reuses the base client for its own requests.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.httpClient)
		authed := c.creds.Client(ctx)
		authed.Timeout = c.httpClient.Timeout
		c.httpClient = authed
	}
	return c, nil
}

var _ portsrepo.DocumentGateway = (*Client)(nil)

func (c *Client) SubmitJournalEntry(ctx context.Context, entry domain.JournalEntry) (domain.Submission, error) {
	return c.create(ctx, domain.KindJournalEntry, pathJournalEntries, toJournalEntryPayload(entry))
}

func (c *Client) SubmitInvoice(ctx context.Context, invoice domain.Invoice) (domain.Submission, error) {
	path := pathSaleInvoices
	if invoice.Kind == domain.PurchaseInvoice {
		path = pathPurchaseInvoices
	}
	return c.create(ctx, invoice.Kind.DocumentKind(), path, toInvoicePayload(invoice))
}

// SubmitPayrollReceipt stores the receipt. The backend books no journal entry for
// payroll, so the returned submission carries no JournalID.
func (c *Client) SubmitPayrollReceipt(ctx context.Context, receipt domain.PayrollReceipt) (domain.Submission, error) {
	return c.create(ctx, domain.KindPayrollReceipt, pathPayrollReceipts, toPayrollPayload(receipt))
}

// SubmitCashMovement stores a receipt or payment. As with payroll, the backend
// books no journal entry for it.
func (c *Client) SubmitCashMovement(ctx context.Context, movement domain.CashMovement) (domain.Submission, error) {
	path := pathReceipts
	if movement.Kind == domain.SupplierPayment {
		path = pathPayments
	}
	return c.create(ctx, movement.Kind.DocumentKind(), path, toCashMovementPayload(movement))
}

func (c *Client) Counts(ctx context.Context) (domain.Counts, error) {
	var reply countsReply
	if err := c.do(ctx, http.MethodGet, pathCounts, nil, nil, &reply); err != nil {
		return domain.Counts{}, err
	}
	return reply.toDomain(), nil
}

// ListJournalEntries fetches the whole filtered listing and pages it locally; the
// backend has no cursor support.
func (c *Client) ListJournalEntries(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, *string, error) {
	query := url.Values{}
	if filter.Month > 0 {
		query.Set("mes", strconv.Itoa(filter.Month))
	}
	if filter.Year > 0 {
		query.Set("anio", strconv.Itoa(filter.Year))
	}

	var replies []journalEntryReply
	if err := c.do(ctx, http.MethodGet, pathJournalEntries, query, nil, &replies); err != nil {
		return nil, nil, err
	}
	entries := make([]domain.JournalEntry, len(replies))
	for i, r := range replies {
		entry, err := r.toDomain()
		if err != nil {
			return nil, nil, fmt.Errorf("decode journal entries: %w", err)
		}
		entries[i] = entry
	}

	page, next, err := pagination.Slice(entries, func(e domain.JournalEntry) (time.Time, time.Time) {
		return e.Date, e.CreatedAt
	}, filter.Limit, filter.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return page, next, nil
}

func (c *Client) JournalPeriods(ctx context.Context) ([]domain.JournalPeriod, error) {
	var replies []periodReply
	if err := c.do(ctx, http.MethodGet, pathJournalPeriods, nil, nil, &replies); err != nil {
		return nil, err
	}
	periods := make([]domain.JournalPeriod, len(replies))
	for i, r := range replies {
		periods[i] = domain.JournalPeriod{Year: r.Anio, Month: r.Mes, Count: r.Cantidad}
	}
	return periods, nil
}

func (c *Client) create(ctx context.Context, kind domain.DocumentKind, path string, payload any) (domain.Submission, error) {
	var reply createdReply
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &reply); err != nil {
		return domain.Submission{}, asSubmissionError(err)
	}
	if reply.ID == "" {
		return domain.Submission{}, &apperrors.SubmissionError{StatusCode: http.StatusBadGateway, Message: "backend reply carries no id"}
	}
	return reply.toSubmission(kind, c.now()), nil
}

// asSubmissionError keeps the backend's status and message for a failed create.
func asSubmissionError(err error) error {
	var backendErr *apperrors.BackendError
	if errors.As(err, &backendErr) {
		return &apperrors.SubmissionError{StatusCode: backendErr.StatusCode, Message: backendErr.Message, Err: backendErr.Err}
	}
	return err
}

// do sends one request and decodes a 2xx JSON reply into out. Any other outcome
// is returned as *apperrors.BackendError carrying the backend's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.BackendError{Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperrors.BackendError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("undecodable reply from %s", path),
			Err:        err,
		}
	}
	return nil
}

func parseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var reply errorReply
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &reply); err == nil && reply.Error != "" {
		msg = reply.Error
	}
	if msg == "" {
		msg = resp.Status
	}
	return &apperrors.BackendError{StatusCode: resp.StatusCode, Message: msg}
}

func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return "backend did not answer in time"
	}
	if errors.Is(err, context.Canceled) {
		return "request cancelled"
	}
	return "backend unreachable: " + err.Error()
}
