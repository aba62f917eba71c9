package sheets

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Supported env vars:
//   - GOOGLE_SERVICE_ACCOUNT_JSON (inline service account credentials)
//   - GOOGLE_SERVICE_ACCOUNT_FILE (default: service_account.json)
//   - CVT_WORKBOOK (default: CVT_DB)
const (
	defaultCredentialsFile = "service_account.json"
	defaultWorkbookName    = "CVT_DB"
)

var credentialScopes = []string{
	sheetsapi.SpreadsheetsScope,
	drive.DriveReadonlyScope,
}

// ConnectionManager opens the shared workbook once per process and serves
// worksheet reads and appends for every entity. The workbook is located by
// name through the Drive API, matching how the spreadsheet is shared with the
// service account rather than referenced by id.
//
// Initialization is lazy: the first call resolves credentials and the
// workbook, subsequent calls reuse the result. When initialization fails the
// error is cached and every call reports it, which the persistence layer
// treats as remote-unavailable and degrades to the local CSV files.
type ConnectionManager struct {
	workbookName string
	headers      map[string][]string

	initOnce sync.Once
	initErr  error

	svc           *sheetsapi.Service
	spreadsheetID string

	mu    sync.Mutex
	known map[string]bool
}

// NewConnectionManager builds a manager for the configured workbook. headers
// maps each worksheet title to its canonical header row, used when a missing
// worksheet has to be created.
func NewConnectionManager(headers map[string][]string) *ConnectionManager {
	name := os.Getenv("CVT_WORKBOOK")
	if name == "" {
		name = defaultWorkbookName
	}
	return &ConnectionManager{
		workbookName: name,
		headers:      headers,
		known:        make(map[string]bool),
	}
}

func (m *ConnectionManager) init(ctx context.Context) error {
	m.initOnce.Do(func() {
		credsJSON, err := loadCredentialsJSON()
		if err != nil {
			m.initErr = err
			log.Printf("[sheets][conn] credentials unavailable: %v", err)
			return
		}

		creds, err := google.CredentialsFromJSON(ctx, credsJSON, credentialScopes...)
		if err != nil {
			m.initErr = fmt.Errorf("loading service account credentials: %w", err)
			log.Printf("[sheets][conn] %v", m.initErr)
			return
		}

		svc, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			m.initErr = fmt.Errorf("creating sheets service: %w", err)
			log.Printf("[sheets][conn] %v", m.initErr)
			return
		}

		driveSvc, err := drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			m.initErr = fmt.Errorf("creating drive service: %w", err)
			log.Printf("[sheets][conn] %v", m.initErr)
			return
		}

		id, err := findWorkbook(ctx, driveSvc, m.workbookName)
		if err != nil {
			m.initErr = err
			log.Printf("[sheets][conn] workbook lookup failed: %v", err)
			return
		}

		m.svc = svc
		m.spreadsheetID = id
		log.Printf("[sheets][conn] workbook %q resolved id=%s", m.workbookName, id)
	})
	return m.initErr
}

func loadCredentialsJSON() ([]byte, error) {
	if inline := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); inline != "" {
		return []byte(inline), nil
	}

	path := os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE")
	if path == "" {
		path = defaultCredentialsFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file %s: %w", path, err)
	}
	return data, nil
}

func findWorkbook(ctx context.Context, svc *drive.Service, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`))
	list, err := svc.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("searching workbook %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("workbook %q not shared with the service account", name)
	}
	return list.Files[0].Id, nil
}

// ensureWorksheet creates the worksheet with its canonical header row when
// the workbook does not have it yet. The result is remembered per process.
func (m *ConnectionManager) ensureWorksheet(ctx context.Context, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.known[title] {
		return nil
	}

	book, err := m.svc.Spreadsheets.Get(m.spreadsheetID).Fields("sheets(properties(title))").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("reading workbook metadata: %w", err)
	}
	for _, sh := range book.Sheets {
		m.known[sh.Properties.Title] = true
	}
	if m.known[title] {
		return nil
	}

	_, err = m.svc.Spreadsheets.BatchUpdate(m.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: title},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("creating worksheet %s: %w", title, err)
	}

	if header := m.headers[title]; len(header) > 0 {
		values := make([]interface{}, len(header))
		for i, col := range header {
			values[i] = col
		}
		_, err = m.svc.Spreadsheets.Values.Update(m.spreadsheetID, title+"!A1", &sheetsapi.ValueRange{
			Values: [][]interface{}{values},
		}).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("writing header row for %s: %w", title, err)
		}
	}

	log.Printf("[sheets][conn] worksheet %s created", title)
	m.known[title] = true
	return nil
}

// AppendRow appends one row at the bottom of the worksheet.
func (m *ConnectionManager) AppendRow(ctx context.Context, worksheet string, values []string) error {
	if err := m.init(ctx); err != nil {
		return err
	}
	if err := m.ensureWorksheet(ctx, worksheet); err != nil {
		return err
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	_, err := m.svc.Spreadsheets.Values.Append(m.spreadsheetID, worksheet, &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("appending to %s: %w", worksheet, err)
	}
	return nil
}

// GetAllRecords reads the whole worksheet and maps every data row by the
// header row. Rows shorter than the header get empty strings for the missing
// cells.
func (m *ConnectionManager) GetAllRecords(ctx context.Context, worksheet string) ([]map[string]string, error) {
	if err := m.init(ctx); err != nil {
		return nil, err
	}
	if err := m.ensureWorksheet(ctx, worksheet); err != nil {
		return nil, err
	}

	resp, err := m.svc.Spreadsheets.Values.Get(m.spreadsheetID, worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", worksheet, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = strings.ToLower(strings.TrimSpace(fmt.Sprint(cell)))
	}

	records := make([]map[string]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		record := make(map[string]string, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(row) {
				record[col] = fmt.Sprint(row[i])
			} else {
				record[col] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}
