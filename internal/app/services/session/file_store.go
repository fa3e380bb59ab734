package session

import (
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// FileStore keeps the single drctl session as a JSON file. Writes go to a
// temp file in the same directory and are renamed into place.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, constvars.SessionFileName),
	}
}

// DefaultSessionDir is ~/.drctl, or dir when it is set.
func DefaultSessionDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constvars.SessionFileDirName), nil
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load(ctx context.Context) (models.Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Session{}, nil
	} else if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	err = json.Unmarshal(data, &session)
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (f *FileStore) Save(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	err = os.MkdirAll(dir, constvars.SessionFileDirPermission)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, constvars.SessionFileName+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Chmod(constvars.SessionFilePermission)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmpName, f.path)
}

func (f *FileStore) Clear(ctx context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
