package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/layout"
	"github.com/goliatone/go-awsform/pkg/model"
	"github.com/goliatone/go-awsform/pkg/render"
)

type scriptedDriver struct {
	inputs      []string
	passwords   []string
	selections  []int
	multi       [][]string
	infoSeen    []string
	promptsSeen []string

	failOn string
	err    error
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.promptsSeen = append(d.promptsSeen, "input:"+cfg.Message)
	if d.failOn == cfg.Message {
		return "", d.err
	}
	if len(d.inputs) == 0 {
		return "", nil
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptedDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	d.promptsSeen = append(d.promptsSeen, "password:"+cfg.Message)
	if len(d.passwords) == 0 {
		return "", nil
	}
	next := d.passwords[0]
	d.passwords = d.passwords[1:]
	return next, nil
}

func (d *scriptedDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	d.promptsSeen = append(d.promptsSeen, "select:"+cfg.Message)
	if len(d.selections) == 0 {
		return cfg.DefaultIndex, nil
	}
	next := d.selections[0]
	d.selections = d.selections[1:]
	return next, nil
}

func (d *scriptedDriver) MultiSelect(ctx context.Context, cfg MultiSelectConfig) ([]string, error) {
	d.promptsSeen = append(d.promptsSeen, "multiselect:"+cfg.Message)
	if len(d.multi) == 0 {
		return nil, nil
	}
	next := d.multi[0]
	d.multi = d.multi[1:]
	return next, nil
}

func (d *scriptedDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	d.promptsSeen = append(d.promptsSeen, "confirm:"+cfg.Message)
	return cfg.Default, nil
}

func (d *scriptedDriver) Info(ctx context.Context, msg string) error {
	d.infoSeen = append(d.infoSeen, msg)
	return nil
}

func decoratedForm(t *testing.T) model.FormModel {
	t.Helper()

	form := model.FormModel{
		OperationID: "submitAWSBackendConfig",
		Endpoint:    "/api/backends/aws/config",
		Method:      "POST",
		Fields: []model.Field{
			{
				Name: "credentials", Type: model.FieldTypeObject, Required: true, Label: "Credentials",
				Nested: []model.Field{
					{Name: "type", Type: model.FieldTypeString, Required: true, Enum: []any{"access_key", "default"}, Default: "access_key"},
					{Name: "access_key", Type: model.FieldTypeString},
					{Name: "secret_key", Type: model.FieldTypeString, Format: "password"},
				},
			},
			{Name: "regions", Type: model.FieldTypeArray, Required: true},
			{Name: "s3_bucket_name", Type: model.FieldTypeString, Required: true, Label: "S3 Bucket Name"},
			{Name: "ec2_subnet_id", Type: model.FieldTypeString, Label: "EC2 Subnet ID"},
		},
	}

	store, err := layout.LoadFS(layout.DefaultFS())
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}
	if err := layout.NewDecorator(store).Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	return form
}

func TestRun_CollectsValuesByBindingKey(t *testing.T) {
	driver := &scriptedDriver{
		inputs:     []string{"AKIA123", "dstack-artifacts", "subnet-0abc"},
		passwords:  []string{"s3cret"},
		selections: []int{0},
		multi:      [][]string{{"us-east-1", "eu-west-1"}},
	}
	renderer := New(
		WithDriver(driver),
		WithArrayOptions(content.FieldNames().Regions, []string{"us-east-1", "eu-west-1", "ap-south-1"}),
	)

	values, err := renderer.Run(context.Background(), decoratedForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	names := content.FieldNames()
	want := map[string]any{
		names.Credentials.Type:      "access_key",
		names.Credentials.AccessKey: "AKIA123",
		names.Credentials.SecretKey: "s3cret",
		names.Regions:               []string{"us-east-1", "eu-west-1"},
		names.S3BucketName:          "dstack-artifacts",
		names.EC2SubnetID:           "subnet-0abc",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("collected values mismatch (-want +got):\n%s", diff)
	}

	if len(driver.infoSeen) == 0 {
		t.Fatalf("expected the form title banner to be shown")
	}
	joined := strings.Join(driver.promptsSeen, ",")
	if !strings.Contains(joined, "password:Secret key") {
		t.Fatalf("secret key should use the password prompt, saw: %s", joined)
	}
	if !strings.Contains(joined, "select:Type") {
		t.Fatalf("credentials type should use the select prompt, saw: %s", joined)
	}
	if !strings.Contains(joined, "multiselect:Regions") {
		t.Fatalf("regions should use the multi-select prompt, saw: %s", joined)
	}
}

func TestRun_ArrayWithoutCatalogSplitsInput(t *testing.T) {
	driver := &scriptedDriver{
		inputs:     []string{"AKIA123", "us-east-1, eu-west-1", "bucket", "subnet-1"},
		passwords:  []string{"s3cret"},
		selections: []int{0},
	}
	renderer := New(WithDriver(driver))

	values, err := renderer.Run(context.Background(), decoratedForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	got := values[content.FieldNames().Regions]
	want := []string{"us-east-1", "eu-west-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_AbortPropagates(t *testing.T) {
	driver := &scriptedDriver{
		selections: []int{0},
		failOn:     "Access key",
		err:        ErrAborted,
	}
	renderer := New(WithDriver(driver))

	if _, err := renderer.Run(context.Background(), decoratedForm(t), render.RenderOptions{}); err != ErrAborted {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRender_EncodesSubmissionAsJSON(t *testing.T) {
	driver := &scriptedDriver{
		inputs:     []string{"AKIA123", "bucket", ""},
		passwords:  []string{"s3cret"},
		selections: []int{1},
		multi:      [][]string{{"us-east-1"}},
	}
	renderer := New(
		WithDriver(driver),
		WithArrayOptions(content.FieldNames().Regions, []string{"us-east-1"}),
	)

	output, err := renderer.Render(context.Background(), decoratedForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := string(output)

	if !strings.Contains(body, `"credentials.type": "default"`) {
		t.Fatalf("submission missing selected credentials type:\n%s", body)
	}
	if !strings.Contains(body, `"s3_bucket_name": "bucket"`) {
		t.Fatalf("submission missing bucket value:\n%s", body)
	}
}
