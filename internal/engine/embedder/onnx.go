package embedder

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// onnxSession wraps a DynamicAdvancedSession for BERT-style models.
type onnxSession struct {
	session    *ort.DynamicAdvancedSession
	inputNames []string
	outputName string
	embedDim   int64
}

// newONNXSession loads the model and creates an inference session. The
// ONNX Runtime shared library is expected beside the model file.
func newONNXSession(modelPath string) (*onnxSession, error) {
	libPath := filepath.Join(filepath.Dir(modelPath), "libonnxruntime.so")
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	inputNames, err := validateInputs(inputs)
	if err != nil {
		return nil, err
	}

	if len(outputs) == 0 {
		return nil, fmt.Errorf("onnx: model has no outputs")
	}
	outputName := outputs[0].Name
	dims := outputs[0].Dimensions
	if len(dims) != 3 {
		return nil, fmt.Errorf("onnx: expected 3D output tensor, got %v", dims)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(4)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(modelPath, inputNames, []string{outputName}, opts)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &onnxSession{
		session:    session,
		inputNames: inputNames,
		outputName: outputName,
		embedDim:   dims[2],
	}, nil
}

// validateInputs checks for the expected BERT-style inputs and returns
// them in the canonical order.
func validateInputs(inputs []ort.InputOutputInfo) ([]string, error) {
	nameSet := make(map[string]bool, len(inputs))
	for _, inp := range inputs {
		nameSet[inp.Name] = true
	}
	required := []string{"input_ids", "attention_mask", "token_type_ids"}
	for _, name := range required {
		if !nameSet[name] {
			return nil, fmt.Errorf("onnx: model missing required input %q", name)
		}
	}
	return required, nil
}

// infer runs one inference call over flat [batchSize * seqLen] slices and
// returns the hidden states as a flat [batchSize * seqLen * embedDim] slice.
func (s *onnxSession) infer(inputIDs, attentionMask, tokenTypeIDs []int64, batchSize, seqLen int64) ([]float32, error) {
	shape := ort.NewShape(batchSize, seqLen)

	tIDs, err := ort.NewTensor(shape, inputIDs)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input_ids tensor: %w", err)
	}
	defer tIDs.Destroy()

	tMask, err := ort.NewTensor(shape, attentionMask)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create attention_mask tensor: %w", err)
	}
	defer tMask.Destroy()

	tTypes, err := ort.NewTensor(shape, tokenTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create token_type_ids tensor: %w", err)
	}
	defer tTypes.Destroy()

	outShape := ort.NewShape(batchSize, seqLen, s.embedDim)
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	if err := s.session.Run([]ort.Value{tIDs, tMask, tTypes}, []ort.Value{tOut}); err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	src := tOut.GetData()
	result := make([]float32, len(src))
	copy(result, src)
	return result, nil
}

func (s *onnxSession) close() error {
	if s.session != nil {
		return s.session.Destroy()
	}
	return nil
}
