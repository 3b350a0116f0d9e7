package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	AWSRegion              string
	S3Bucket               string
	SESSender              string
	AlertEmail             string
	ApprovalTimeoutMinutes int
	RateCentsPerMinute     int64
}
