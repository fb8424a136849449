package response

import "github.com/gin-gonic/gin"

// 两套历史口径并存：
//   - auth/users/events 族：真实状态码 + {"error": msg}
//   - stores 族：统一 200 + {"success": false, "message": msg}

func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func StoreFail(c *gin.Context, msg string) {
	c.JSON(200, gin.H{"success": false, "message": msg})
}

func StoreOK(c *gin.Context, msg string, extra gin.H) {
	out := gin.H{"success": true, "message": msg}
	for k, v := range extra {
		out[k] = v
	}
	c.JSON(200, out)
}
