package taxfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DecodeDataset reads a dataset folder, one <collection>.json file per
// collection. A missing file is an empty collection.
func DecodeDataset(dir string) (*Dataset, error) {
	return decodeDatasetFS(os.DirFS(dir))
}

func decodeDatasetFS(fsys fs.FS) (*Dataset, error) {
	ds := new(Dataset)
	for _, c := range collections {
		filename := c.name + ".json"
		f, err := fsys.Open(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", filename, err)
		}
		err = decodeCollection(filename, f, c.ptr(ds))
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// LoadDataset reads a dataset from path, a folder or a bundle file.
func LoadDataset(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not find dataset %q: %w", path, err)
	}
	if info.IsDir() {
		return DecodeDataset(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset file %q: %w", path, err)
	}
	defer f.Close()
	ds, err := ReadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return ds, nil
}

// SaveDataset writes ds as a bundle file, creating its folder when needed.
func SaveDataset(path string, ds *Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for dataset %q: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening dataset file %q for writing: %w", path, err)
	}
	defer file.Close()
	return EncodeDataset(file, ds)
}
