package util

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// SubmissionRecord is one entry of the local submission history: the
// scheduler-allocated job id plus the eight parameters exactly as they
// were forwarded.
type SubmissionRecord struct {
	JobId      string `json:"job_id"`
	DistCode   string `json:"dist_code"`
	Wavelet    string `json:"wavelet"`
	Num        string `json:"num"`
	I0         string `json:"i0"`
	Id         string `json:"id"`
	Ja         string `json:"ja"`
	Jb         string `json:"jb"`
	Jc         string `json:"jc"`
	SubmitTime string `json:"submit_time"`
}

type historyData struct {
	Submissions []SubmissionRecord `json:"submissions"`
}

type PersistentStorage struct {
	flock *flock.Flock
	data  historyData
	file  string
}

func NewPersistentStorage(file string) (*PersistentStorage, error) {
	dir := filepath.Dir(file)
	if err := EnsureDirExists(dir); err != nil {
		return nil, err
	}

	lock := flock.New(file + ".lock") // file lock
	return &PersistentStorage{
		flock: lock,
		file:  file,
	}, nil
}

func (ps *PersistentStorage) LoadData() error {
	err := ps.flock.RLock()
	if err != nil {
		return err
	}
	defer ps.flock.Unlock()

	content, err := os.ReadFile(ps.file)
	if err != nil {
		if os.IsNotExist(err) {
			ps.data = historyData{}
			return nil
		}
		return err
	}

	return json.Unmarshal(content, &ps.data)
}

func (ps *PersistentStorage) SaveData() error {
	err := ps.flock.Lock()
	if err != nil {
		return err
	}
	defer ps.flock.Unlock()

	file, err := os.Create(ps.file)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	return encoder.Encode(&ps.data)
}

// Append reloads the history, adds one record and writes it back.
func (ps *PersistentStorage) Append(record SubmissionRecord) error {
	if err := ps.LoadData(); err != nil {
		return err
	}
	ps.data.Submissions = append(ps.data.Submissions, record)
	return ps.SaveData()
}

func (ps *PersistentStorage) Records() []SubmissionRecord {
	return ps.data.Submissions
}
