package cbr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/config"
)

// CBRClient fetches the central bank key rate, used as the reference rate
// users compare their loan rates against.
type CBRClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	rate      float64
	fetchedAt time.Time
}

// NewCBRClient initializes a new CBR client
func NewCBRClient(cfg *config.Config, log *logrus.Logger) *CBRClient {
	return &CBRClient{
		url: cfg.CBRURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		ttl: cfg.KeyRateTTL,
		now: time.Now,
	}
}

const (
	soapNamespace = "http://www.w3.org/2003/05/soap-envelope"
	cbrNamespace  = "http://web.cbr.ru/"
	keyRateAction = cbrNamespace + "KeyRate"

	// lookback is the window requested so weekends and holidays still return rows
	lookback = 30 * 24 * time.Hour
)

// observation is one published key rate
type observation struct {
	on   time.Time
	rate float64
}

// keyRateEnvelope renders the KeyRate SOAP 1.2 call for the given window
func keyRateEnvelope(from, to time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	env := doc.CreateElement("soap12:Envelope")
	env.CreateAttr("xmlns:soap12", soapNamespace)
	call := env.CreateElement("soap12:Body").CreateElement("KeyRate")
	call.CreateAttr("xmlns", cbrNamespace)
	call.CreateElement("fromDate").SetText(from.Format("2006-01-02"))
	call.CreateElement("ToDate").SetText(to.Format("2006-01-02"))

	return doc.WriteToBytes()
}

func (c *CBRClient) post(ctx context.Context, envelope []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(envelope))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", keyRateAction)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("key rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("key rate service answered %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// parseKeyRates reads every KR row of the diffgram
func parseKeyRates(raw []byte) ([]observation, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	rows := doc.FindElements("//diffgram/KeyRate/KR")
	if len(rows) == 0 {
		return nil, fmt.Errorf("no key rate data found in XML")
	}

	out := make([]observation, 0, len(rows))
	for i, row := range rows {
		dt, rate := row.SelectElement("DT"), row.SelectElement("Rate")
		if dt == nil || rate == nil {
			return nil, fmt.Errorf("key rate row %d is incomplete", i)
		}
		on, err := time.Parse(time.RFC3339, strings.TrimSpace(dt.Text()))
		if err != nil {
			return nil, fmt.Errorf("key rate row %d: bad date: %w", i, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rate.Text()), 64)
		if err != nil {
			return nil, fmt.Errorf("key rate row %d: bad rate: %w", i, err)
		}
		out = append(out, observation{on: on, rate: v})
	}
	return out, nil
}

// latest picks the most recent observation; rows are not trusted to be ordered
func latest(rows []observation) observation {
	best := rows[0]
	for _, o := range rows[1:] {
		if o.on.After(best.on) {
			best = o
		}
	}
	return best
}

// GetKeyRate returns the current key rate in percent, served from cache
// while it is younger than the configured TTL.
func (c *CBRClient) GetKeyRate(ctx context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.rate, nil
	}

	now := c.now()
	envelope, err := keyRateEnvelope(now.Add(-lookback), now)
	if err != nil {
		return 0, fmt.Errorf("failed to build key rate request: %w", err)
	}
	body, err := c.post(ctx, envelope)
	if err != nil {
		return 0, err
	}
	rows, err := parseKeyRates(body)
	if err != nil {
		return 0, err
	}

	obs := latest(rows)
	c.rate = obs.rate
	c.fetchedAt = now
	c.log.WithFields(logrus.Fields{
		"rate":  obs.rate,
		"as_of": obs.on.Format("2006-01-02"),
		"rows":  len(rows),
	}).Info("Key rate refreshed")
	return obs.rate, nil
}
