package domain

import "fmt"

// OnnxModel references an ONNX model shipped with the application and
// used from ranking expressions.
type OnnxModel struct {
	// ModelName identifies the model inside the schema.
	ModelName string

	// ModelFilePath is the local path the model is read from when the
	// package is assembled.
	ModelFilePath string

	// Inputs maps ONNX input names to rank features.
	Inputs map[string]string

	// Outputs maps ONNX output names to rank feature names.
	Outputs map[string]string

	// ModelFileName is derived at construction: "<ModelName>.onnx".
	ModelFileName string

	// FilePath is the model's path inside the package, derived at
	// construction: "files/<ModelFileName>".
	FilePath string
}

// NewOnnxModel creates an ONNX model reference. Name and file path are
// required. The in-package file name and path are derived here and are
// part of the value's identity from creation.
func NewOnnxModel(modelName, modelFilePath string, inputs, outputs map[string]string) (OnnxModel, error) {
	if modelName == "" {
		return OnnxModel{}, fmt.Errorf("%w: onnx model name is required", ErrInvalidArgument)
	}
	if modelFilePath == "" {
		return OnnxModel{}, fmt.Errorf("%w: onnx model file path is required", ErrInvalidArgument)
	}
	fileName := modelName + ".onnx"
	return OnnxModel{
		ModelName:     modelName,
		ModelFilePath: modelFilePath,
		Inputs:        inputs,
		Outputs:       outputs,
		ModelFileName: fileName,
		FilePath:      "files/" + fileName,
	}, nil
}
