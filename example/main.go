package main

import (
	"log"

	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/phrasal"
)

func main() {
	dictionary := phrasal.NewMemoryDictionary(map[string][]phrasal.Definition{
		"look up":     {{POS: "VB", Gloss: "search for information about", Pointers: []string{"look into"}}},
		"come on":     {{POS: "VB", Gloss: "hurry, or be encouraging"}},
		"put up with": {{POS: "VB", Gloss: "tolerate"}},
	})
	grouper := phrasal.NewPhrasalVerbGrouper(
		dictionary,
		phrasal.WithWordsRank(phrasal.RankTable{"look up": 1204}),
	)
	pipeline := phrasal.NewPipeline(phrasal.NewLemmaFilter(), grouper)

	tokenStream := phrasal.NewTokenStream([]phrasal.Token{
		{Value: "Look", Normal: "look", POS: "VB", ContextID: 1},
		{Value: "it", Normal: "it", POS: "PRP", ContextID: 1},
		{Value: "up", Normal: "up", POS: "RP", ContextID: 1},
	})
	grouped, err := pipeline.Run(tokenStream)
	if err != nil {
		log.Fatal(err)
	}
	pp.Println(grouped.Tokens)
}
