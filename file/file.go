package file

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/revelaction/huric/conll"
	"github.com/revelaction/huric/render"
	sent "github.com/revelaction/huric/sentence"

	"golang.org/x/net/html/charset"
)

const (
	DataDir  = "data"
	ConllDir = "data/neural"
)

// fulltextName is the file name the training scripts read, written for
// every mode.
const fulltextName = "fulltext.train"

// ReadDoc reads a HuRIC XML file from the given path and unmarshals it.
// The Doc Title is set to the file name.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	doc, err := DecodeDoc(f)
	if err != nil {
		return sent.Doc{}, err
	}

	doc.Title = filepath.Base(path)
	return doc, nil
}

// DecodeDoc decodes and validates a HuRIC XML document. Encodings other than
// UTF-8 declared in the xml prolog are converted.
func DecodeDoc(r io.Reader) (sent.Doc, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var doc sent.Doc
	if err := dec.Decode(&doc); err != nil {
		return sent.Doc{}, fmt.Errorf("XML decoding error: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

// ConllPath returns the path of the CoNLL file for dataset and mode under
// outDir.
func ConllPath(outDir, dataset, mode string) string {
	return filepath.Join(outDir, dataset, fmt.Sprintf("%s.%s.syntaxnet.conll", dataset, mode))
}

// SentsPath returns the path of the plain sentences file for dataset.
func SentsPath(outDir, dataset string) string {
	return ConllPath(outDir, dataset, fulltextName) + ".sents"
}

// WriteSamples writes the converted sentences of dataset to outDir/dataset:
// the CoNLL file for mode, the same content as the fulltext.train CoNLL file
// and the .sents file with one sentence per line.
func WriteSamples(outDir, dataset, mode string, sents []conll.Sentence) error {
	if err := os.MkdirAll(filepath.Join(outDir, dataset), 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	for _, path := range []string{ConllPath(outDir, dataset, mode), ConllPath(outDir, dataset, fulltextName)} {
		if err := writeFile(path, sents, render.Conll); err != nil {
			return err
		}
	}

	return writeFile(SentsPath(outDir, dataset), sents, render.Sents)
}

func writeFile(path string, sents []conll.Sentence, encode func(io.Writer, []conll.Sentence) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := encode(f, sents); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
