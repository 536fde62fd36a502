package wbatch

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"WdeFrontEnd/internal/qsub"
	"WdeFrontEnd/internal/util"
)

func testConfig(t *testing.T) *util.Config {
	t.Helper()
	config := util.DefaultConfig()
	config.SpoolDir = filepath.Join(t.TempDir(), "spool")
	config.HistoryFile = filepath.Join(t.TempDir(), "history.json")
	return config
}

func testParams() *qsub.Params {
	return &qsub.Params{
		DistCode: "D1", Wavelet: "haar", Num: "100",
		I0: "0", Id: "1", Ja: "2", Jb: "4", Jc: "6",
	}
}

func fakeClient(config *util.Config, varLists *[]string) *qsub.Client {
	client := qsub.NewClient(config)
	client.Runner = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if len(args) >= 2 && args[0] == "-v" {
			*varLists = append(*varLists, args[1])
		}
		return []byte("4242.pbsserver\n"), nil
	}
	return client
}

func runRootCmd(args []string) (string, error) {
	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

func TestUsageGuardOnMissingArgs(t *testing.T) {
	out, err := runRootCmd([]string{})

	var wdeErr *util.WdeError
	if !errors.As(err, &wdeErr) || wdeErr.Code != util.ErrorCmdArg {
		t.Fatalf("got %v, wanted a WdeError with ErrorCmdArg", err)
	}
	for _, word := range []string{"dist", "wavelet", "resolution levels"} {
		if !strings.Contains(out, word) {
			t.Errorf("usage text is missing %q", word)
		}
	}
}

func TestUsageGuardOnEmptyFirstArg(t *testing.T) {
	_, err := runRootCmd([]string{"", "haar", "100", "0", "1", "2", "4", "6"})

	var wdeErr *util.WdeError
	if !errors.As(err, &wdeErr) || wdeErr.Code != util.ErrorCmdArg {
		t.Fatalf("got %v, wanted a WdeError with ErrorCmdArg", err)
	}
}

func TestSubmitJobsSingle(t *testing.T) {
	config := testConfig(t)
	varLists := make([]string, 0)
	client := fakeClient(config, &varLists)

	if err := SubmitJobs(client, config, testParams(), 1); err != nil {
		t.Fatal(err)
	}

	want := []string{"DIST_CODE=D1,WAVELET=haar,NUM=100,I0=0,ID=1,JA=2,JB=4,JC=6"}
	if len(varLists) != 1 || varLists[0] != want[0] {
		t.Errorf("got %#v, wanted %#v", varLists, want)
	}

	storage, err := util.NewPersistentStorage(config.HistoryFile)
	if err != nil {
		t.Fatal(err)
	}
	if err := storage.LoadData(); err != nil {
		t.Fatal(err)
	}
	records := storage.Records()
	if len(records) != 1 {
		t.Fatalf("got %d history records, wanted 1", len(records))
	}
	if records[0].JobId != "4242.pbsserver" || records[0].DistCode != "D1" {
		t.Errorf("unexpected history record %#v", records[0])
	}
}

func TestSubmitJobsRepeatAdvancesFirstSampleIndex(t *testing.T) {
	config := testConfig(t)
	varLists := make([]string, 0)
	client := fakeClient(config, &varLists)

	params := testParams()
	params.Id = "2"
	if err := SubmitJobs(client, config, params, 3); err != nil {
		t.Fatal(err)
	}

	if len(varLists) != 3 {
		t.Fatalf("got %d submissions, wanted 3", len(varLists))
	}
	// i0 advances by num*id = 200 per job, everything else is verbatim.
	for i, wantI0 := range []string{"I0=0,", "I0=200,", "I0=400,"} {
		if !strings.Contains(varLists[i], wantI0) {
			t.Errorf("job %d: got %q, wanted it to contain %q", i, varLists[i], wantI0)
		}
		if !strings.HasPrefix(varLists[i], "DIST_CODE=D1,WAVELET=haar,NUM=100,") {
			t.Errorf("job %d: parameters are not verbatim: %q", i, varLists[i])
		}
	}
}

func TestSubmitJobsRepeatRejectsNonNumericNum(t *testing.T) {
	config := testConfig(t)
	varLists := make([]string, 0)
	client := fakeClient(config, &varLists)

	params := testParams()
	params.Num = "many"
	err := SubmitJobs(client, config, params, 2)

	var wdeErr *util.WdeError
	if !errors.As(err, &wdeErr) || wdeErr.Code != util.ErrorCmdArg {
		t.Fatalf("got %v, wanted a WdeError with ErrorCmdArg", err)
	}
	// The first job is still verbatim and the failure happens before the
	// second submission.
	if len(varLists) != 1 {
		t.Errorf("got %d submissions, wanted 1", len(varLists))
	}
}

func TestSubmitJobsPropagatesSchedulerFailure(t *testing.T) {
	config := testConfig(t)
	client := qsub.NewClient(config)
	client.Runner = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("qsub: Invalid credential")
	}

	err := SubmitJobs(client, config, testParams(), 1)
	var wdeErr *util.WdeError
	if !errors.As(err, &wdeErr) || wdeErr.Code != util.ErrorScheduler {
		t.Fatalf("got %v, wanted a WdeError with ErrorScheduler", err)
	}
}
