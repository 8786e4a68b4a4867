package phrasal

// Stage transforms a token stream and hands it to the next stage.
type Stage interface {
	Process(*TokenStream) (*TokenStream, error)
}

type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) Pipeline {
	return Pipeline{
		stages: stages,
	}
}

func (p Pipeline) Run(tokenStream *TokenStream) (*TokenStream, error) {
	var err error
	for _, stage := range p.stages {
		tokenStream, err = stage.Process(tokenStream)
		if err != nil {
			return nil, err
		}
	}
	return tokenStream, nil
}
