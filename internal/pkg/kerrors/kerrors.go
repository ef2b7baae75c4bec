package kerrors

// Linux errno values reused as service error codes
const (
	EISDIR  int64 = 21 // Is a directory
	EINVAL  int64 = 22 // Invalid argument
	ENOSYS  int64 = 38 // Function not implemented
	ENODATA int64 = 61 // No data available
)
