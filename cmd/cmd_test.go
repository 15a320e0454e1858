package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testBackup = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<smses count="3">
  <sms address="VM-HDFCBK" date="1700000000000" body="Rs. 1,250.50 debited from a/c **4321 to AMAZON on 12-12-24" />
  <sms address="VM-HDFCBK" date="1700000000001" body="Your OTP is 4532, do not share." />
  <sms address="AD-ICICIB" date="1700000000002" body="INR 5000.00 credited to a/c XX9876 from RAHUL SHARMA" />
</smses>`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("SMSLEDGER_DB_PATH", filepath.Join(dir, "test.db"))
	t.Setenv("SMSLEDGER_LOG_LEVEL", "error")
	t.Setenv("SMSLEDGER_SENDER", "")
	t.Setenv("SMSLEDGER_DEFAULT_ACCOUNT", "Cash")

	path := filepath.Join(dir, "backup.xml")
	if err := os.WriteFile(path, []byte(testBackup), 0644); err != nil {
		t.Fatalf("failed to write backup: %v", err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	testEnv(t)

	out, err := run(t, "parse", "--at", "1700000000000", "Rs. 1,250.50 debited from a/c **4321 to AMAZON on 12-12-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Type:         Expense", "Amount:       1250.50", "Counterparty: AMAZON", "Account:      ...4321"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}

	out, err = run(t, "parse", "Your OTP is 4532, do not share.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Not a transaction message.") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestParseCommand_At(t *testing.T) {
	testEnv(t)
	body := "Rs 100 debited at DMART"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"epoch zero", []string{"parse", "--at", "0", body}, time.UnixMilli(0).Format("2006-01-02 15:04:05")},
		{"explicit", []string{"parse", "--at", "1700000000000", body}, time.UnixMilli(1700000000000).Format("2006-01-02 15:04:05")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, "Date:         "+tt.want) {
				t.Errorf("expected date %q in output, got: %s", tt.want, out)
			}
		})
	}
}

func TestFetchCommand(t *testing.T) {
	path := testEnv(t)
	csvDir := filepath.Join(t.TempDir(), "out")

	out, err := run(t, "fetch", "--yes", "-o", csvDir, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "2 transaction(s) found.") {
		t.Errorf("unexpected output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(csvDir, "SMS_Account_4321.csv")); err != nil {
		t.Errorf("expected CSV file: %v", err)
	}

	// flags from the previous run must not carry over
	out, err = run(t, "fetch", "--yes", "--sender=AD-ICICIB", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "1 transaction(s) found.") {
		t.Errorf("sender filter not applied: %s", out)
	}
	if strings.Contains(out, "Created") {
		t.Errorf("output directory leaked from previous run: %s", out)
	}

	out, err = run(t, "fetch", "--yes", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "2 transaction(s) found.") {
		t.Errorf("sender filter leaked from previous run: %s", out)
	}
}

func TestFetchCommand_Errors(t *testing.T) {
	testEnv(t)

	if _, err := run(t, "fetch", "--yes", "inbox.txt"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := run(t, "fetch", "--yes", "--from", "12/12/2024", "inbox.xml"); err == nil {
		t.Error("expected error for bad date")
	}
}

func TestImportAndResetCommands(t *testing.T) {
	path := testEnv(t)

	out, err := run(t, "import", "--yes", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Imported 2 transaction(s), skipped 0 already imported.") {
		t.Errorf("unexpected output: %s", out)
	}

	out, err = run(t, "import", "--yes", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Imported 0 transaction(s), skipped 2 already imported.") {
		t.Errorf("unexpected output on re-import: %s", out)
	}

	out, err = run(t, "reset")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Ledger data cleared.") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestParseSince(t *testing.T) {
	got, err := parseSince("2024-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local).UnixMilli()
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}

	if got, err := parseSince(""); err != nil || got != 0 {
		t.Errorf("empty date: got %d, %v", got, err)
	}
}
