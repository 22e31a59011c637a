package settlement

var IntentFeeEnabled = intentFeeEnabled
