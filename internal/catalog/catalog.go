package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"rain-scent/internal/domain"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	perfumesFile  = "perfumes.yaml"
	questionsFile = "questions.yaml"
)

// Catalog agrupa las tablas estaticas de perfumes y preguntas.
// Se construye una vez al arrancar y es de solo lectura, por lo que puede
// compartirse entre goroutines sin sincronizacion.
type Catalog struct {
	perfumes  []domain.Perfume
	questions []domain.Question
	byID      map[string]int
}

var ErrDuplicateID = errors.New("catalog duplicate id")

// New valida y arma un catalogo a partir de tablas ya cargadas.
func New(perfumes []domain.Perfume, questions []domain.Question) (*Catalog, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	seenPerfumes := make(map[string]struct{}, len(perfumes))
	for i, p := range perfumes {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("perfume %d (%s): %w", i, p.ID, err)
		}
		if _, ok := seenPerfumes[p.ID]; ok {
			return nil, fmt.Errorf("%w: perfume %s", ErrDuplicateID, p.ID)
		}
		seenPerfumes[p.ID] = struct{}{}
	}

	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		if err := v.Struct(q); err != nil {
			return nil, fmt.Errorf("question %d (%s): %w", i, q.ID, err)
		}
		if _, ok := byID[q.ID]; ok {
			return nil, fmt.Errorf("%w: question %s", ErrDuplicateID, q.ID)
		}
		seenOptions := make(map[string]struct{}, len(q.Options))
		for _, o := range q.Options {
			if _, ok := seenOptions[o.ID]; ok {
				return nil, fmt.Errorf("%w: option %s in question %s", ErrDuplicateID, o.ID, q.ID)
			}
			seenOptions[o.ID] = struct{}{}
		}
		byID[q.ID] = i
	}

	return &Catalog{
		perfumes:  perfumes,
		questions: questions,
		byID:      byID,
	}, nil
}

// Load lee las tablas desde dir; si dir esta vacio usa las embebidas en el binario.
func Load(dir string) (*Catalog, error) {
	read := func(name string) ([]byte, error) {
		if dir == "" {
			return embedded.ReadFile("data/" + name)
		}
		return os.ReadFile(filepath.Join(dir, name))
	}

	rawPerfumes, err := read(perfumesFile)
	if err != nil {
		return nil, fmt.Errorf("read perfumes: %w", err)
	}
	rawQuestions, err := read(questionsFile)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	var perfumes []domain.Perfume
	if err := yaml.Unmarshal(rawPerfumes, &perfumes); err != nil {
		return nil, fmt.Errorf("parse perfumes: %w", err)
	}
	var questions []domain.Question
	if err := yaml.Unmarshal(rawQuestions, &questions); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}

	return New(perfumes, questions)
}

// MustLoadEmbedded es util en tests y herramientas donde el catalogo embebido es siempre valido.
func MustLoadEmbedded() *Catalog {
	c, err := Load("")
	if err != nil {
		panic(err)
	}
	return c
}

// Perfumes devuelve el catalogo en orden de declaracion.
func (c *Catalog) Perfumes() []domain.Perfume {
	if c == nil {
		return nil
	}
	return c.perfumes
}

func (c *Catalog) Questions() []domain.Question {
	if c == nil {
		return nil
	}
	return c.questions
}

// Question busca una pregunta por id.
func (c *Catalog) Question(id string) (domain.Question, bool) {
	if c == nil {
		return domain.Question{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return domain.Question{}, false
	}
	return c.questions[i], true
}

// Perfume busca un perfume por id.
func (c *Catalog) Perfume(id string) (domain.Perfume, bool) {
	if c == nil {
		return domain.Perfume{}, false
	}
	for _, p := range c.perfumes {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Perfume{}, false
}
