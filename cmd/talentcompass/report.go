package main

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/talent-compass/internal/handler/cli"
)

var reportNames = []string{"directory", "departments", "attrition", "parity", "gratuity", "pareto", "all"}

// generate produces the named report and renders it unless output is JSON.
func (a *app) generate(ctx context.Context, name string, r *cli.Renderer) (any, error) {
	switch name {
	case "directory":
		res, err := a.reports.Directory(ctx)
		return render(res, err, r.Directory)
	case "departments":
		res, err := a.reports.DepartmentDistribution(ctx)
		return render(res, err, r.Departments)
	case "attrition":
		res, err := a.reports.Attrition(ctx)
		return render(res, err, r.Attrition)
	case "parity":
		res, err := a.reports.PayParity(ctx)
		return render(res, err, r.PayParity)
	case "gratuity":
		res, err := a.reports.Gratuity(ctx)
		return render(res, err, r.Gratuity)
	case "pareto":
		res, err := a.recruitment.Pareto(ctx)
		return render(res, err, r.Pareto)
	case "all":
		res, err := a.dashboard.GetSnapshot(ctx)
		return render(res, err, r.Dashboard)
	default:
		return nil, fmt.Errorf("unknown report %q, expected one of %v", name, reportNames)
	}
}

func render[T any](res T, err error, fn func(T)) (any, error) {
	if err != nil {
		return nil, err
	}
	if !reportJSON {
		fn(res)
	}
	return res, nil
}
