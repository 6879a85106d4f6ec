package main

import (
	"context"
	"fmt"
	"log"

	"controlsync/models"
)

const contentTypeXML = "application/xml"

// Pipeline processes report jobs one at a time, strictly in configuration
// order. The first failure anywhere aborts the whole run: with two
// independently stored documents encoding the same values, continuing past
// an error risks leaving them inconsistent.
type Pipeline struct {
	client models.ReportClient
}

// NewPipeline creates a Pipeline driving the given report server client.
func NewPipeline(client models.ReportClient) *Pipeline {
	return &Pipeline{client: client}
}

// Run processes every report job in cfg and returns a human-readable summary
// of the last processed report.
func (p *Pipeline) Run(ctx context.Context, cfg *models.Config) (string, error) {
	summary := "no reports configured"
	for i, job := range cfg.Reports {
		log.Printf("Processing report %d/%d: %s", i+1, len(cfg.Reports), job.ReportPath)
		if err := p.processReport(ctx, job); err != nil {
			return "", err
		}
		summary = fmt.Sprintf("updated input controls for %s (view %s)", job.ReportPath, job.ViewPath)
	}
	return summary, nil
}

// processReport runs the per-report sequence: fetch the legal-value domain,
// rewrite and re-upload the view's state document (to both the report and
// the view), then rewrite and re-upload the report's definition document.
// The state uploads deliberately precede the definition fetch so a transport
// failure can never leave the definition updated ahead of the state.
func (p *Pipeline) processReport(ctx context.Context, job models.Report) error {
	domain, err := p.client.ListInputControls(ctx, job.Org, job.ViewPath)
	if err != nil {
		return err
	}

	statePath := stateResource(job.ViewPath)
	raw, err := p.client.FetchResource(ctx, job.Org, statePath)
	if err != nil {
		return err
	}
	stateDoc, err := ParseDocument(raw)
	if err != nil {
		return &models.XMLParseError{Path: statePath, Err: err}
	}

	controlMap, err := BuildControlMap(stateDoc)
	if err != nil {
		return err
	}
	if err := RewriteState(stateDoc, controlMap, job.InputControls, domain); err != nil {
		return err
	}
	stateBytes, err := SerializeDocument(stateDoc)
	if err != nil {
		return err
	}

	for _, path := range []string{stateResource(job.ReportPath), statePath} {
		if err := p.client.PutResource(ctx, job.Org, path, stateBytes, contentTypeXML); err != nil {
			return err
		}
		log.Printf("Uploaded state to %s", path)
	}

	definitionPath := definitionResource(job.ReportPath)
	raw, err = p.client.FetchResource(ctx, job.Org, definitionPath)
	if err != nil {
		return err
	}
	definitionDoc, err := ParseDocument(raw)
	if err != nil {
		return &models.XMLParseError{Path: definitionPath, Err: err}
	}

	if err := RewriteDefinition(definitionDoc, controlMap); err != nil {
		return err
	}
	definitionBytes, err := SerializeDocument(definitionDoc)
	if err != nil {
		return err
	}
	if err := p.client.PutResource(ctx, job.Org, definitionPath, definitionBytes, contentTypeXML); err != nil {
		return err
	}
	log.Printf("Uploaded definition to %s", definitionPath)

	return nil
}

// The server keeps its internal XML documents under the repository path of
// the owning resource.
func stateResource(path string) string      { return path + "/state" }
func definitionResource(path string) string { return path + "/definition" }
