package scrape

func BuildSummary(r Result) ResultSummary {
	summary := ResultSummary{
		URL:        r.URL,
		FilePath:   r.FilePath,
		CacheHit:   r.CacheHit,
		DurationMS: r.Duration.Milliseconds(),
	}
	if r.Error != nil {
		summary.Status = "failed"
		summary.Error = r.Error.Error()
		return summary
	}

	summary.Status = "success"
	summary.Title = r.Recipe.Title
	summary.Language = r.Language
	summary.Converted = r.Converted
	summary.IngredientCount = len(r.Recipe.Ingredients)
	summary.InstructionCount = len(r.Recipe.Instructions)
	return summary
}
