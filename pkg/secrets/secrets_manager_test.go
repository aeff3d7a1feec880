package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSecretsAPI struct {
	mock.Mock
}

func (m *MockSecretsAPI) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	args := m.Called(ctx, aws.ToString(params.SecretId))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsmanager.GetSecretValueOutput), args.Error(1)
}

const arn = "arn:aws:secretsmanager:eu-west-1:123456789012:secret:resend"

func TestGetSecretStringFromManager(t *testing.T) {
	api := new(MockSecretsAPI)
	api.On("GetSecretValue", mock.Anything, arn).
		Return(&secretsmanager.GetSecretValueOutput{SecretString: aws.String(" re_live \n")}, nil)

	c := NewClientWithAPI(api, nil)
	got, err := c.GetSecretString(context.Background(), arn, "re_env")
	require.NoError(t, err)
	assert.Equal(t, "re_live", got)
	api.AssertExpectations(t)
}

func TestGetSecretStringFallsBackOnError(t *testing.T) {
	api := new(MockSecretsAPI)
	api.On("GetSecretValue", mock.Anything, arn).Return(nil, errors.New("AccessDenied"))

	c := NewClientWithAPI(api, nil)
	got, err := c.GetSecretString(context.Background(), arn, "re_env")
	require.NoError(t, err)
	assert.Equal(t, "re_env", got)
}

func TestGetSecretStringFallsBackOnEmptySecret(t *testing.T) {
	api := new(MockSecretsAPI)
	api.On("GetSecretValue", mock.Anything, arn).
		Return(&secretsmanager.GetSecretValueOutput{SecretString: aws.String("")}, nil)

	c := NewClientWithAPI(api, nil)
	got, err := c.GetSecretString(context.Background(), arn, "re_env")
	require.NoError(t, err)
	assert.Equal(t, "re_env", got)
}

func TestGetSecretStringWithoutARNSkipsManager(t *testing.T) {
	api := new(MockSecretsAPI)

	c := NewClientWithAPI(api, nil)
	got, err := c.GetSecretString(context.Background(), "", "re_env")
	require.NoError(t, err)
	assert.Equal(t, "re_env", got)
	api.AssertNotCalled(t, "GetSecretValue", mock.Anything, mock.Anything)
}

func TestGetSecretStringNothingFound(t *testing.T) {
	api := new(MockSecretsAPI)
	api.On("GetSecretValue", mock.Anything, arn).Return(nil, errors.New("ResourceNotFound"))

	c := NewClientWithAPI(api, nil)
	_, err := c.GetSecretString(context.Background(), arn, "")
	assert.Error(t, err)
}
