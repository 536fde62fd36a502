package qsub

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"WdeFrontEnd/internal/util"
)

func TestVarList(t *testing.T) {
	params := &Params{
		DistCode: "D1", Wavelet: "haar", Num: "100",
		I0: "0", Id: "1", Ja: "2", Jb: "4", Jc: "6",
	}
	want := "DIST_CODE=D1,WAVELET=haar,NUM=100,I0=0,ID=1,JA=2,JB=4,JC=6"
	if got := params.VarList(); got != want {
		t.Errorf("got %q, wanted %q", got, want)
	}
}

func TestPositionalOrder(t *testing.T) {
	params := &Params{
		DistCode: "D1", Wavelet: "haar", Num: "100",
		I0: "0", Id: "1", Ja: "2", Jb: "4", Jc: "6",
	}
	want := []string{"D1", "haar", "100", "0", "1", "2", "4", "6"}
	if got := params.Positional(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, wanted %#v", got, want)
	}
}

func TestRenderScriptResources(t *testing.T) {
	script, err := RenderScript(util.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{
		"#PBS -l nodes=1:ppn=1",
		"#PBS -l mem=4gb",
		"#PBS -l walltime=00:40:00",
		"#PBS -m ae",
		"#PBS -j oe",
	} {
		if !strings.Contains(script, line+"\n") {
			t.Errorf("script is missing %q", line)
		}
	}
}

func TestRenderScriptBody(t *testing.T) {
	script, err := RenderScript(util.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	// Each step must appear after its prerequisite.
	steps := []string{
		"module purge",
		"module load python/3.6.1",
		"mkdir -p $PBS_O_HOME/RESP/pngs",
		"cd $PBS_O_HOME/RESP",
		"source $PBS_O_HOME/.venvs/wde/bin/activate",
		"export PYTHONPATH=$PBS_O_HOME/pywde",
		"export LANG=en_AU.UTF-8",
		"export LC_ALL=en_AU.UTF-8",
		"python $PBS_O_HOME/pywde/runit.py run-with $DIST_CODE $WAVELET $NUM $I0 $ID $JA $JB $JC",
	}
	pos := -1
	for _, step := range steps {
		idx := strings.Index(script, step)
		if idx < 0 {
			t.Fatalf("script is missing %q", step)
		}
		if idx < pos {
			t.Errorf("step %q is out of order", step)
		}
		pos = idx
	}
}

func TestRenderScriptDeterministic(t *testing.T) {
	config := util.DefaultConfig()
	first, err := RenderScript(config)
	if err != nil {
		t.Fatal(err)
	}
	second, err := RenderScript(config)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("rendered script is not deterministic")
	}
}

func TestWriteScriptIdempotent(t *testing.T) {
	config := util.DefaultConfig()
	config.SpoolDir = filepath.Join(t.TempDir(), "spool")

	first, err := WriteScript(config)
	if err != nil {
		t.Fatal(err)
	}
	second, err := WriteScript(config)
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if first != second {
		t.Errorf("script path changed between writes: %q vs %q", first, second)
	}
	if _, err := os.Stat(first); err != nil {
		t.Errorf("script file does not exist: %v", err)
	}
}
